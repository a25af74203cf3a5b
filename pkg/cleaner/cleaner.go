// Package cleaner provides composable text cleaners for scraped article fields.
// Each cleaner applies one normalization rule; rules are combined with NewChain
// and applied per field by the table-level cleaner in the sftnews subpackage.
package cleaner

// Cleaner transforms a single text value.
type Cleaner interface {
	// Clean returns the transformed text.
	Clean(text string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
