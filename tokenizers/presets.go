package tokenizers

import (
	"github.com/pkg/errors"
)

// Preset is an enum of named pretrained tokenizer configurations.
//
// Presets are static configuration selection, nothing more: each one pairs a
// fixed model identifier with the construction path for its family.
type Preset int

const (
	// PresetBertBaseUncased is the BERT base WordPiece tokenizer with lowercase normalization.
	PresetBertBaseUncased Preset = iota

	// PresetGPT2 is the GPT-2 byte-level BPE tokenizer.
	PresetGPT2

	// PresetRobertaBase is the RoBERTa base byte-level BPE tokenizer.
	PresetRobertaBase

	presetCount
)

// ModelID returns the HuggingFace model identifier for the preset.
func (p Preset) ModelID() string {
	switch p {
	case PresetBertBaseUncased:
		return "bert-base-uncased"
	case PresetGPT2:
		return "gpt2"
	case PresetRobertaBase:
		return "roberta-base"
	}
	return ""
}

// String implements fmt.Stringer.
func (p Preset) String() string {
	id := p.ModelID()
	if id == "" {
		return "invalid_preset"
	}
	return id
}

// FromPreset creates a Tokenizer for one of the named pretrained configurations.
//
// The BERT-base and GPT-2 presets construct through the generic by-name path
// (see New). The RoBERTa-base preset does not: it constructs its underlying
// tokenizer through the RoBERTa-family loader, bypassing the generic by-name
// resolution. The generic loader and the family loader are not interchangeable
// for this configuration, so the distinct path is part of the contract, not an
// implementation detail.
func FromPreset(p Preset) (*Tokenizer, error) {
	switch p {
	case PresetBertBaseUncased, PresetGPT2:
		return New(p.ModelID())
	case PresetRobertaBase:
		handle, err := robertaBaseLoader()
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to resolve pretrained tokenizer %q", p.ModelID())
		}
		return &Tokenizer{modelID: p.ModelID(), handle: handle}, nil
	}
	return nil, errors.Errorf("unknown tokenizer preset %d", p)
}
