package dataset

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Vocabulary holds the phrase variants the templates draw from.
// Every slot must carry at least one non-empty phrase.
type Vocabulary struct {
	Start            []string `json:"start" yaml:"start" validate:"min=1,dive,required"`
	End              []string `json:"end" yaml:"end" validate:"min=1,dive,required"`
	NewsArticleType1 []string `json:"news_article_type1" yaml:"news_article_type1" validate:"min=1,dive,required"`
	NewsArticleType2 []string `json:"news_article_type2" yaml:"news_article_type2" validate:"min=1,dive,required"`
	TitleType1       []string `json:"title_type1" yaml:"title_type1" validate:"min=1,dive,required"`
	TitleType2       []string `json:"title_type2" yaml:"title_type2" validate:"min=1,dive,required"`
	Suitable         []string `json:"suitable" yaml:"suitable" validate:"min=1,dive,required"`
	CompletionStart  []string `json:"completion_start" yaml:"completion_start" validate:"min=1,dive,required"`
	TitlePlain       []string `json:"title_plain" yaml:"title_plain" validate:"min=1,dive,required"`
}

// DefaultVocabulary returns the Telugu phrase set.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Start:            []string{"క్రింది", "కింది", "ఇవ్వబడిన", "ఇచ్చిన"},
		End:              []string{"వ్రాయండి", "ఇవ్వండి", "రాయండి"},
		NewsArticleType1: []string{"వార్తా కథనానికి", "న్యూస్ ఆర్టికల్ కి", "న్యూస్ కథనానికి"},
		NewsArticleType2: []string{"వార్తా కథనాన్ని", "న్యూస్ ఆర్టికల్ ని", "న్యూస్ కథనాన్ని"},
		TitleType1:       []string{"శీర్షికను", "టైటిల్ ను", "హెడ్లైన్ ను"},
		TitleType2:       []string{"శీర్షికతో", "టైటిల్ తో", "హెడ్లైన్ తో"},
		Suitable:         []string{"సరిపోయే", "తగిన", "అనువైన"},
		CompletionStart:  []string{"ఇచ్చిన", "ఇవ్వబడిన"},
		TitlePlain:       []string{"శీర్షిక", "టైటిల్", "హెడ్లైన్"},
	}
}

var validate = validator.New()

// Validate checks that every slot has at least one non-empty phrase.
func (v Vocabulary) Validate() error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid vocabulary: %w", err)
	}
	return nil
}

// ParseVocabulary decodes a YAML vocabulary. Slots missing from data keep
// their default phrases.
func ParseVocabulary(data []byte) (Vocabulary, error) {
	v := DefaultVocabulary()
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("failed to parse vocabulary: %w", err)
	}
	if err := v.Validate(); err != nil {
		return Vocabulary{}, err
	}
	return v, nil
}

// LoadVocabulary reads a YAML vocabulary file.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path comes from user config
	if err != nil {
		return Vocabulary{}, fmt.Errorf("failed to read vocabulary file: %w", err)
	}
	return ParseVocabulary(data)
}
