package dataset

// Task identifies which framing produced an example.
type Task int

const (
	// TaskHeadline asks for a headline given an article.
	TaskHeadline Task = iota + 1
	// TaskArticle asks for an article given a headline.
	TaskArticle
)

func (t Task) String() string {
	switch t {
	case TaskHeadline:
		return "headline"
	case TaskArticle:
		return "article"
	default:
		return "unknown"
	}
}

// Column names of the serialized dataset.
const (
	ColumnInputs  = "inputs"
	ColumnTargets = "targets"
)

// Example is one prompt/completion pair. Task is kept for diagnostics and is
// not serialized.
type Example struct {
	Inputs  string `json:"inputs" yaml:"inputs"`
	Targets string `json:"targets" yaml:"targets"`
	Task    Task   `json:"-" yaml:"-"`
}

// Header returns the CSV column order.
func (e Example) Header() []string {
	return []string{ColumnInputs, ColumnTargets}
}

// Record returns the example as a CSV row.
func (e Example) Record() []string {
	return []string{e.Inputs, e.Targets}
}

// Dataset is an ordered list of examples.
type Dataset []Example

// Count returns the number of examples per task.
func (d Dataset) Count() map[Task]int {
	counts := make(map[Task]int, 2)
	for _, e := range d {
		counts[e.Task]++
	}
	return counts
}
