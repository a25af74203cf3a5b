package sftnews

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.InvalidTitleWords) != 9 {
		t.Errorf("expected 9 invalid title words, got %d", len(cfg.InvalidTitleWords))
	}
	if len(cfg.CharactersToRemove) != 7 {
		t.Errorf("expected 7 artifact sequences, got %d", len(cfg.CharactersToRemove))
	}
	if cfg.StripHTML {
		t.Error("expected StripHTML to be off by default")
	}
}

func TestDefaultConfig_IsACopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InvalidTitleWords[0] = "changed"

	if DefaultInvalidTitleWords[0] == "changed" {
		t.Error("DefaultConfig should not share the package-level slice")
	}
}

func TestPresetMarkup(t *testing.T) {
	if !PresetMarkup().StripHTML {
		t.Error("expected PresetMarkup to enable StripHTML")
	}
}

func TestConfigMerge(t *testing.T) {
	base := &Config{InvalidTitleWords: []string{"a", "b"}}
	other := &Config{InvalidTitleWords: []string{"b", "c"}, CharactersToRemove: []string{"x"}, StripHTML: true}

	merged := base.Merge(other)

	if len(merged.InvalidTitleWords) != 3 {
		t.Errorf("expected 3 words after dedup, got %v", merged.InvalidTitleWords)
	}
	if len(merged.CharactersToRemove) != 1 {
		t.Errorf("expected 1 artifact, got %v", merged.CharactersToRemove)
	}
	if !merged.StripHTML {
		t.Error("expected StripHTML to be merged")
	}
	if len(base.InvalidTitleWords) != 2 {
		t.Error("Merge should not modify the receiver")
	}
}

func TestConfigMerge_Nil(t *testing.T) {
	base := DefaultConfig()
	if base.Merge(nil) != base {
		t.Error("Merge(nil) should return the receiver")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		seqs    []string
		wantErr bool
	}{
		{"defaults", DefaultCharactersToRemove, false},
		{"plain_backslash_word", []string{`C:\temp`}, false},
		{"escaped_bracket", []string{`\[U\+200E\]`}, true},
		{"escaped_dot", []string{`a\.b`}, true},
		{"escaped_backslash", []string{`\\`}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Config{CharactersToRemove: tt.seqs}).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
