package envelope

import (
	"encoding/json"
)

// PayloadCodec provides content-type aware marshaling of envelope payloads.
// The default is JSON; any codec whose output round-trips through bytes can
// be substituted via PackerConfig.WithPayloadCodec. The envelope layer only
// ever sees the encoded bytes, so swapping codecs never changes the header
// format.
type PayloadCodec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// jsonCodec implements PayloadCodec for JSON.
type jsonCodec struct{}

// JSONCodec returns the default JSON payload codec.
func JSONCodec() PayloadCodec {
	return jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
