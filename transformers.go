// Package transformers only holds the version of this set of tools for using
// pretrained transformer tokenizers from Go.
//
// There are 2 main sub-packages:
//
//   - tokenizers: facades over pretrained tokenizers, with named presets for
//     the common BERT, GPT-2 and RoBERTa configurations, plus a registry to
//     bind other tokenizer families (SentencePiece models, tiktoken
//     encodings) to model identifiers.
//   - dataset: a minimal indexable view over a list of texts, for feeding
//     batch-iteration utilities.
package transformers

// Version of the library.
// Manually kept in sync with project releases.
var Version = "v0.0.0-dev"
