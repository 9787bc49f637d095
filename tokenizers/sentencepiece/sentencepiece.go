// Package sentencepiece implements an api.Segmenter based on the SentencePiece tokenizer.
package sentencepiece

import (
	esentencepiece "github.com/eliben/go-sentencepiece"
	"github.com/pkg/errors"

	"github.com/sgsml/go-transformers/internal/files"
	"github.com/sgsml/go-transformers/tokenizers/api"
)

// FromFile creates a Segmenter from a local SentencePiece model file (a
// serialized Model proto, usually named "tokenizer.model"). A leading "~" in
// the path is expanded to the user's home directory.
//
// Combined with tokenizers.RegisterModel, this lets a local SentencePiece
// model serve a chosen model identifier:
//
//	tokenizers.RegisterModel("my-gemma", func(string) (api.Segmenter, error) {
//		return sentencepiece.FromFile("~/models/gemma/tokenizer.model")
//	})
func FromFile(modelPath string) (api.Segmenter, error) {
	modelPath, err := files.ExpandTilde(modelPath)
	if err != nil {
		return nil, err
	}
	if !files.Exists(modelPath) {
		return nil, errors.Errorf("sentencepiece model file %q not found", modelPath)
	}
	proc, err := esentencepiece.NewProcessorFromPath(modelPath)
	if err != nil {
		return nil, errors.Wrapf(err, "can't create sentencepiece tokenizer from %q", modelPath)
	}
	return &Segmenter{proc: proc}, nil
}

// Segmenter wraps a SentencePiece processor as an api.Segmenter.
type Segmenter struct {
	proc *esentencepiece.Processor
}

// Compile time assert that sentencepiece.Segmenter implements the api.Segmenter interface.
var _ api.Segmenter = &Segmenter{}

// Segment returns the piece strings of the SentencePiece segmentation of text.
func (s *Segmenter) Segment(text string) ([]string, error) {
	tokens := s.proc.Encode(text)
	pieces := make([]string, len(tokens))
	for i, token := range tokens {
		pieces[i] = token.Text
	}
	return pieces, nil
}
