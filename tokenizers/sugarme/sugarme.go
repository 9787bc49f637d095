// Package sugarme implements the default api.Segmenter provider, backed by the
// github.com/sugarme/tokenizer port of HuggingFace tokenizers.
//
// FromModelID resolves any HuggingFace model identifier through the library's
// "tokenizer.json" loading path. RobertaBase is the separate loader for the
// RoBERTa-base configuration family, which does not go through the by-name
// path.
//
// Downloading and caching of the tokenizer definitions is fully owned by the
// sugarme library (by default under its own cache directory, overridable
// through its environment variables).
package sugarme

import (
	"github.com/pkg/errors"
	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"

	"github.com/sgsml/go-transformers/tokenizers/api"
)

// FromModelID creates a Segmenter for the given HuggingFace model identifier,
// loading (and caching) the model's "tokenizer.json" definition.
func FromModelID(modelID string) (api.Segmenter, error) {
	configFile, err := tokenizer.CachedPath(modelID, "tokenizer.json")
	if err != nil {
		return nil, errors.WithMessagef(err, "can't fetch tokenizer.json for model %q", modelID)
	}
	tk, err := pretrained.FromFile(configFile)
	if err != nil {
		return nil, errors.WithMessagef(err, "can't create tokenizer for model %q from %q", modelID, configFile)
	}
	return &Segmenter{tk: tk}, nil
}

// RobertaBase creates the Segmenter for the RoBERTa-base configuration, using
// the library's RoBERTa-family constructor instead of the generic
// tokenizer.json path.
func RobertaBase() (api.Segmenter, error) {
	// HuggingFace defaults for this family: add_prefix_space=false, trim_offsets=true.
	return &Segmenter{tk: pretrained.RobertaBase(false, true)}, nil
}

// Segmenter wraps a sugarme tokenizer as an api.Segmenter.
type Segmenter struct {
	tk *tokenizer.Tokenizer
}

// Compile time assert that sugarme.Segmenter implements the api.Segmenter interface.
var _ api.Segmenter = &Segmenter{}

// Segment returns the subword token strings for text, without special tokens,
// matching what the segmentation algorithm produces for the raw input.
func (s *Segmenter) Segment(text string) ([]string, error) {
	if text == "" {
		return []string{}, nil
	}
	encoding, err := s.tk.EncodeSingle(text)
	if err != nil {
		return nil, err
	}
	return encoding.GetTokens(), nil
}
