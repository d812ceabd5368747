package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetWriterAndLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)
	require.NoError(t, SetLevel("WARN"))

	Log().Info().Msg("dropped")
	require.Zero(t, buf.Len())

	Log().Warn().Str("seed", "foo").Msg("kept")
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	require.Equal(t, "kept", m["message"])
	require.Equal(t, "foo", m["seed"])

	require.Error(t, SetLevel("loud"))
	require.NoError(t, SetLevel(""))
}
