// Package envelope packs structured values into compact self-describing
// binary buffers and back. Every buffer carries a fixed 6-byte header
// (format version, transform method code, payload length) followed by the
// UTF-8 serialized payload, which may be obscured in place by one of the
// registered transform strategies. The transforms are deliberately
// non-cryptographic obfuscation; there is no key exchange, authentication,
// or integrity protection at this layer.
package envelope

import (
	"encoding/binary"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/go-i2p/go-envelope/pool"
	"github.com/go-i2p/go-envelope/transform"
)

// Version is the envelope format version written at offset 0 of every
// buffer. Unpack rejects buffers carrying any other value.
const Version byte = 1

// HeaderLength is the fixed width of the envelope header. Bytes below this
// offset are never transformed.
const HeaderLength = transform.MetaLength

// Header field offsets.
const (
	offVersion = 0 // 1 byte: format version
	offMethod  = 1 // 1 byte: transform method code, 0 = none
	offLength  = 2 // 4 bytes: payload length, big-endian unsigned
)

// Packer converts structured values to envelope buffers and back. It is
// immutable after construction and holds no per-call state, so one Packer
// can be shared across goroutines as long as a single buffer is not passed
// to two calls at once.
type Packer struct {
	secret     string
	method     string
	codec      PayloadCodec
	dispatcher *transform.Dispatcher
	buffers    *pool.BufferPool
}

// NewPacker creates a Packer from config. A nil config yields a plaintext
// packer with JSON payloads.
func NewPacker(config *PackerConfig) (*Packer, error) {
	if config == nil {
		config = NewPackerConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	codec := config.Codec
	if codec == nil {
		codec = JSONCodec()
	}

	p := &Packer{
		secret:     config.Secret,
		method:     config.Method,
		codec:      codec,
		dispatcher: transform.NewDispatcher(config.Secret),
		buffers:    pool.NewBufferPool(nil),
	}

	log.WithFields(logrus.Fields{
		"method":       describeMethod(p.method),
		"content_type": codec.ContentType(),
	}).Debug("Packer created")

	return p, nil
}

// Method returns the configured transform method name, or the empty string
// for a plaintext packer.
func (p *Packer) Method() string {
	return p.method
}

// Pack serializes v, prepends the envelope header and, if a transform is
// configured, obscures the payload region in place. The returned buffer is
// owned by the caller.
func (p *Packer) Pack(v any) ([]byte, error) {
	payload, err := p.codec.Marshal(v)
	if err != nil {
		return nil, oops.
			Code(CodePackError).
			In("envelope").
			With("content_type", p.codec.ContentType()).
			Wrapf(err, "payload serialization failed")
	}

	buf := make([]byte, HeaderLength+len(payload))
	buf[offVersion] = Version
	buf[offMethod] = p.methodCode()
	binary.BigEndian.PutUint32(buf[offLength:offLength+4], uint32(len(payload)))
	copy(buf[HeaderLength:], payload)

	if p.secret != "" && p.method != "" {
		buf = p.dispatcher.ApplyEncrypt(buf, p.method)
	}

	log.WithFields(logrus.Fields{
		"payload_length": len(payload),
		"method_code":    buf[offMethod],
		"fingerprint":    payloadFingerprint(buf[HeaderLength:]),
	}).Debug("envelope packed")

	return buf, nil
}

// Unpack validates the header of buf, reverses a configured transform and
// parses the payload back into a structured value. The caller's buffer is
// never mutated: all work happens on a private scratch copy.
func (p *Packer) Unpack(buf []byte) (any, error) {
	var v any
	if err := p.UnpackInto(buf, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// UnpackInto behaves like Unpack but parses the payload into v, which must
// be a non-nil pointer suitable for the configured payload codec.
func (p *Packer) UnpackInto(buf []byte, v any) error {
	if len(buf) < HeaderLength {
		return oops.
			Code(CodeInvalidLength).
			In("envelope").
			With("buffer_length", len(buf)).
			With("header_length", HeaderLength).
			Errorf("buffer shorter than envelope header")
	}

	// Private scratch copy so the caller's bytes survive the in-place
	// transform untouched.
	scratch := p.buffers.Get(len(buf))
	defer p.buffers.Put(scratch)
	copy(scratch, buf)

	if scratch[offVersion] != Version {
		return oops.
			Code(CodeVersionMismatch).
			In("envelope").
			With("buffer_version", scratch[offVersion]).
			With("expected_version", Version).
			Errorf("envelope format version mismatch")
	}

	code := scratch[offMethod]
	if p.secret != "" && p.method != "" {
		stored := transform.NameForCode(code)
		if stored != p.method {
			return oops.
				Code(CodeMethodMismatch).
				In("envelope").
				With("buffer_method", describeMethod(stored)).
				With("configured_method", p.method).
				With("method_code", code).
				Errorf("envelope was packed with a different transform method")
		}
		p.dispatcher.ApplyDecrypt(scratch, code)
	}

	length := binary.BigEndian.Uint32(scratch[offLength : offLength+4])
	if int64(length) > int64(len(scratch)-HeaderLength) {
		return oops.
			Code(CodeInvalidLength).
			In("envelope").
			With("payload_length", length).
			With("available", len(scratch)-HeaderLength).
			Errorf("declared payload length exceeds buffer")
	}

	payload := scratch[HeaderLength : HeaderLength+int(length)]
	if err := p.codec.Unmarshal(payload, v); err != nil {
		return oops.
			Code(CodeUnpackError).
			In("envelope").
			With("content_type", p.codec.ContentType()).
			With("payload_length", length).
			Wrapf(err, "payload parsing failed")
	}

	log.WithFields(logrus.Fields{
		"payload_length": length,
		"method_code":    code,
		"fingerprint":    payloadFingerprint(payload),
	}).Debug("envelope unpacked")

	return nil
}

// methodCode resolves the configured method to its persisted registry code.
func (p *Packer) methodCode() byte {
	if p.method == "" {
		return transform.CodeNone
	}
	return transform.CodeForName(p.method)
}

// describeMethod renders a method name for log and error fields.
func describeMethod(method string) string {
	if method == "" {
		return "none"
	}
	return method
}
