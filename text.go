package envelope

import (
	"encoding/base64"

	"github.com/samber/oops"
)

// ToText encodes an envelope buffer as a printable radix-64 string for
// transport over text-only channels. ToText(buf) always round-trips through
// FromText, including for the empty buffer.
func ToText(buf []byte) string {
	return base64.StdEncoding.EncodeToString(buf)
}

// FromText decodes a radix-64 transport string back into an envelope buffer.
// Strings containing characters outside the radix-64 alphabet are rejected.
func FromText(s string) ([]byte, error) {
	buf, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, oops.
			Code(CodeInvalidText).
			In("envelope").
			With("input_length", len(s)).
			Wrapf(err, "transport text is not valid radix-64")
	}
	return buf, nil
}
