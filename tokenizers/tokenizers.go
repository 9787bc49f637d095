// Package tokenizers creates facades over pretrained transformer tokenizers.
//
// A Tokenizer is permanently bound at construction to one pretrained
// configuration, selected by its HuggingFace model identifier (see New), or by
// one of the named presets (see FromPreset). The only capability it exposes is
// Tokenize, which delegates the actual subword segmentation to the underlying
// tokenizer library.
//
// All vocabulary loading, caching and downloading is owned by the underlying
// libraries; this package performs no I/O of its own.
package tokenizers

import (
	"github.com/pkg/errors"

	"github.com/sgsml/go-transformers/tokenizers/api"
	"github.com/sgsml/go-transformers/tokenizers/sugarme"
)

// Segmenter is the handle to an underlying pretrained tokenizer.
type Segmenter = api.Segmenter

// Constructor builds the underlying tokenizer for a given model identifier.
// It is used to register tokenizer families beyond the default HuggingFace
// loader, see RegisterModel.
type Constructor func(modelID string) (api.Segmenter, error)

var registerOfModels = make(map[string]Constructor)

// RegisterModel binds a model identifier to a constructor, overriding the
// default HuggingFace loader for that identifier. Used to plug other
// tokenizer families (e.g. local SentencePiece models, tiktoken encodings)
// into the by-name construction path.
func RegisterModel(modelID string, constructor Constructor) {
	registerOfModels[modelID] = constructor
}

// Loader entry points used by New and FromPreset.
// Package variables so tests can intercept them.
var (
	defaultLoader     = sugarme.FromModelID
	robertaBaseLoader = sugarme.RobertaBase
)

// Tokenizer is a facade over one pretrained tokenizer configuration.
//
// It is immutable after construction: there is no re-binding operation, and
// Tokenize keeps no state across calls. Concurrent read-only use is safe as
// long as the underlying tokenizer handle is (a guarantee inherited from the
// underlying library, not provided here).
type Tokenizer struct {
	modelID string
	handle  api.Segmenter
}

// New creates a Tokenizer bound to the given pretrained model identifier,
// e.g. "bert-base-uncased" or "gpt2".
//
// Identifiers registered with RegisterModel resolve through their registered
// constructor; everything else resolves through the default HuggingFace
// loader, which may download and cache the model's tokenizer definition on
// first use. Loading failures are returned to the caller as-is, with message
// context only: no retries and no fallback configuration.
func New(modelID string) (*Tokenizer, error) {
	constructor, found := registerOfModels[modelID]
	if !found {
		constructor = defaultLoader
	}
	handle, err := constructor(modelID)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to resolve pretrained tokenizer %q", modelID)
	}
	return &Tokenizer{modelID: modelID, handle: handle}, nil
}

// ModelID returns the model identifier this tokenizer was constructed with.
func (t *Tokenizer) ModelID() string {
	return t.modelID
}

// Tokenize returns the subword token strings for text, in the left-to-right
// order produced by the underlying tokenizer's segmentation. Empty input
// yields an empty slice. Errors from the underlying tokenizer are passed
// through unchanged.
func (t *Tokenizer) Tokenize(text string) ([]string, error) {
	return t.handle.Segment(text)
}
