package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{name: "zero-length buffer", buf: []byte{}},
		{name: "single byte", buf: []byte{0x00}},
		{name: "header-sized buffer", buf: []byte{1, 0, 0, 0, 0, 0}},
		{name: "all byte values", buf: func() []byte {
			b := make([]byte, 256)
			for i := range b {
				b[i] = byte(i)
			}
			return b
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := FromText(ToText(tt.buf))
			require.NoError(t, err)
			assert.Equal(t, tt.buf, decoded)
		})
	}
}

func TestFromTextRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "non-alphabet characters", input: "this is not base64!"},
		{name: "unicode", input: "日本語"},
		{name: "truncated padding", input: "QUJ"},
		{name: "illegal symbol", input: "AB*D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := FromText(tt.input)
			require.Error(t, err)
			assert.Nil(t, buf)
			assert.Equal(t, CodeInvalidText, ErrorCode(err))
		})
	}
}

func TestFromTextEmptyString(t *testing.T) {
	buf, err := FromText("")
	require.NoError(t, err)
	assert.Empty(t, buf)
}
