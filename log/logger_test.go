package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))
	t.Cleanup(func() {
		SetLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())
	})

	Debug().Msg("hidden")
	Warn().Str("file", "Token.abi").Msg("overloaded function transfer dropped")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"level":"warn"`)
	require.Contains(t, buf.String(), `"file":"Token.abi"`)
	require.Contains(t, buf.String(), "overloaded function transfer dropped")
}
