// Package api defines the Segmenter API implemented by the concrete tokenizer providers.
// It's just a hack to break the cyclic dependency, and allow the users to import `tokenizers` and get the
// default implementations.
package api

// Segmenter is the handle to an underlying pretrained tokenizer.
//
// Segment splits the text into the tokenizer's subword token strings, preserving
// the left-to-right order of the segmentation. An empty text yields an empty slice.
//
// Implementations are expected to be safe for concurrent read-only use, but that
// guarantee is inherited from the underlying tokenizer library, not provided here.
type Segmenter interface {
	Segment(text string) ([]string, error)
}
