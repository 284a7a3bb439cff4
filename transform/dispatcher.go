package transform

import (
	"github.com/sirupsen/logrus"
)

// MetaLength is the width of the envelope header in bytes. A dispatcher
// never touches bytes below this offset.
const MetaLength = 6

// Dispatcher applies a registered transform to the data region of an
// envelope buffer, leaving the header untouched. It holds only the shared
// secret and the header width, so a single dispatcher can be reused across
// calls; the per-call transformer is constructed on demand.
type Dispatcher struct {
	secret     string
	metaLength int
}

// NewDispatcher creates a dispatcher for the given secret.
func NewDispatcher(secret string) *Dispatcher {
	return &Dispatcher{
		secret:     secret,
		metaLength: MetaLength,
	}
}

// ApplyEncrypt encrypts the data region of buf in place using the named
// transform and returns buf for chaining. An unknown method name is a
// deliberate no-op fallback, not an error: recognition failures are the
// envelope codec's responsibility to detect.
func (d *Dispatcher) ApplyEncrypt(buf []byte, methodName string) []byte {
	t, err := NewByName(methodName, d.secret)
	if err != nil {
		log.WithFields(logrus.Fields{
			"method_name": methodName,
		}).Debug("unknown transform method, buffer left unchanged")
		return buf
	}

	if len(buf) <= d.metaLength {
		return buf
	}

	if err := t.Encrypt(buf[d.metaLength:]); err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"transformer": t.Name(),
		}).Error("transform encrypt failed, buffer left unchanged")
	}
	return buf
}

// ApplyDecrypt decrypts the data region of buf in place using the transform
// registered under methodCode and returns buf for chaining. An unknown code,
// including the reserved CodeNone, is the same silent no-op fallback as
// ApplyEncrypt.
func (d *Dispatcher) ApplyDecrypt(buf []byte, methodCode byte) []byte {
	t, err := NewByCode(methodCode, d.secret)
	if err != nil {
		log.WithFields(logrus.Fields{
			"method_code": methodCode,
		}).Debug("unknown transform code, buffer left unchanged")
		return buf
	}

	if len(buf) <= d.metaLength {
		return buf
	}

	if err := t.Decrypt(buf[d.metaLength:]); err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"transformer": t.Name(),
		}).Error("transform decrypt failed, buffer left unchanged")
	}
	return buf
}
