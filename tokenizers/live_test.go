package tokenizers

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests in this file download pretrained tokenizer definitions from the
// HuggingFace hub on first run, so they only run when explicitly requested.
func skipUnlessLive(t *testing.T) {
	t.Helper()
	if os.Getenv("GO_TRANSFORMERS_LIVE_TESTS") == "" {
		t.Skip("set GO_TRANSFORMERS_LIVE_TESTS=1 to run tests that download pretrained tokenizers")
	}
}

func TestLivePresetsTokenize(t *testing.T) {
	skipUnlessLive(t)
	for _, preset := range []Preset{PresetBertBaseUncased, PresetGPT2, PresetRobertaBase} {
		tok, err := FromPreset(preset)
		require.NoError(t, err, "preset %s", preset)

		tokens, err := tok.Tokenize("The quick brown fox jumps over the lazy dog.")
		require.NoError(t, err, "preset %s", preset)
		assert.NotEmpty(t, tokens, "preset %s", preset)

		tokens, err = tok.Tokenize("")
		require.NoError(t, err, "preset %s", preset)
		assert.Empty(t, tokens, "preset %s", preset)
	}
}

func TestLiveBertBaseUncasedGolden(t *testing.T) {
	skipUnlessLive(t)
	tok, err := FromPreset(PresetBertBaseUncased)
	require.NoError(t, err)

	// Recorded from the bert-base-uncased WordPiece tokenizer.
	tokens, err := tok.Tokenize("Hello, world!")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", ",", "world", "!"}, tokens)
}
