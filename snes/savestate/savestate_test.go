package savestate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	env := Envelope{Version: Version, CPU: []byte{1, 2, 3}, Bus: []byte{4, 5}}
	data, err := Encode(env)
	require.NoError(t, err)

	out, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, env, out)
}

func TestDecodeRejectsVersionMismatch(t *testing.T) {
	data, err := Encode(Envelope{Version: Version + 1, CPU: []byte{1}, Bus: []byte{2}})
	require.NoError(t, err)

	_, err = Decode(data)
	require.Error(t, err)
}
