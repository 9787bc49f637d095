// Package tiktoken implements an api.Segmenter over the tiktoken BPE encodings
// used by OpenAI models.
package tiktoken

import (
	"github.com/pkg/errors"
	etiktoken "github.com/pkoukk/tiktoken-go"

	"github.com/sgsml/go-transformers/tokenizers/api"
)

// FromEncoding creates a Segmenter for a named tiktoken encoding, e.g.
// "r50k_base" (the GPT-2/GPT-3 vocabulary) or "cl100k_base". Fetching the
// encoding's vocabulary file is owned by the tiktoken library.
func FromEncoding(name string) (api.Segmenter, error) {
	enc, err := etiktoken.GetEncoding(name)
	if err != nil {
		return nil, errors.WithMessagef(err, "can't load tiktoken encoding %q", name)
	}
	return &Segmenter{enc: enc}, nil
}

// Segmenter wraps a tiktoken encoding as an api.Segmenter.
type Segmenter struct {
	enc *etiktoken.Tiktoken
}

// Compile time assert that tiktoken.Segmenter implements the api.Segmenter interface.
var _ api.Segmenter = &Segmenter{}

// Segment returns the token strings of the BPE segmentation of text.
//
// tiktoken natively produces token ids, so each id is decoded back to its
// vocabulary string individually. Byte-level merges that split multi-byte
// characters may therefore yield tokens that are not valid UTF-8 on their own.
func (s *Segmenter) Segment(text string) ([]string, error) {
	ids := s.enc.Encode(text, nil, nil)
	tokens := make([]string, len(ids))
	for i, id := range ids {
		tokens[i] = s.enc.Decode([]int{id})
	}
	return tokens, nil
}
