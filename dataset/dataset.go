// Package dataset provides a minimal sized, indexable view over a list of
// texts, the shape batch-iteration utilities expect.
package dataset

import (
	"iter"

	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned by TextDataset.At for indices outside [0, Len).
var ErrIndexOutOfRange = errors.New("index out of range")

// TextDataset is a read-only view over an ordered list of texts.
//
// It aliases the slice given to NewTextDataset, it does not copy it. It is
// immutable through its own API, so it is safe for concurrent readers as long
// as the caller does not mutate the underlying slice.
type TextDataset struct {
	texts []string
}

// NewTextDataset creates a TextDataset over the given texts. The slice may be
// empty or nil.
func NewTextDataset(texts []string) *TextDataset {
	return &TextDataset{texts: texts}
}

// Len returns the number of texts.
func (d *TextDataset) Len() int {
	return len(d.texts)
}

// At returns the text at the given index, unchanged.
// It returns an error wrapping ErrIndexOutOfRange if index is outside [0, Len).
func (d *TextDataset) At(index int) (string, error) {
	if index < 0 || index >= len(d.texts) {
		return "", errors.Wrapf(ErrIndexOutOfRange, "index %d with dataset length %d", index, len(d.texts))
	}
	return d.texts[index], nil
}

// All iterates over the (index, text) pairs of the dataset in order.
func (d *TextDataset) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, text := range d.texts {
			if !yield(i, text) {
				return
			}
		}
	}
}
