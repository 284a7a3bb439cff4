package transform

import (
	"github.com/samber/oops"
)

// Method codes persisted at offset 1 of every envelope buffer. The
// code-to-name assignment is an interoperability contract: changing it
// breaks decoding of every previously encoded buffer.
const (
	// CodeNone is reserved to mean "no transform" and is never registered.
	CodeNone byte = 0
	// CodeXOR identifies the repeating-key XOR transform.
	CodeXOR byte = 1
	// CodeAES identifies the layered substitution transform.
	CodeAES byte = 2
	// CodeCaesar identifies the byte-rotation transform.
	CodeCaesar byte = 3
)

// Method names accepted at packer construction.
const (
	NameXOR    = "xor"
	NameAES    = "aes"
	NameCaesar = "caesar"
)

// entry ties a persisted code and public name to a strategy constructor.
type entry struct {
	code    byte
	name    string
	factory func(secret string) (Transformer, error)
}

// registry is the single source of truth for which transform codes exist.
// Codes and names are each unique; CodeNone never appears here.
var registry = []entry{
	{code: CodeXOR, name: NameXOR, factory: func(secret string) (Transformer, error) {
		return NewXORTransformer(secret)
	}},
	{code: CodeAES, name: NameAES, factory: func(secret string) (Transformer, error) {
		return NewAESTransformer(secret)
	}},
	{code: CodeCaesar, name: NameCaesar, factory: func(secret string) (Transformer, error) {
		return NewCaesarTransformer(secret)
	}},
}

// CodeForName returns the persisted code for a method name, or CodeNone if
// the name is not registered.
func CodeForName(name string) byte {
	for _, e := range registry {
		if e.name == name {
			return e.code
		}
	}
	return CodeNone
}

// NameForCode returns the method name for a persisted code, or the empty
// string if the code is not registered.
func NameForCode(code byte) string {
	for _, e := range registry {
		if e.code == code {
			return e.name
		}
	}
	return ""
}

// NewByName constructs the named transformer with the given secret.
func NewByName(name, secret string) (Transformer, error) {
	for _, e := range registry {
		if e.name == name {
			return e.factory(secret)
		}
	}
	return nil, oops.
		Code("UNKNOWN_METHOD").
		In("transform").
		With("method_name", name).
		Errorf("unknown transform method %q", name)
}

// NewByCode constructs the transformer registered under the given code with
// the given secret.
func NewByCode(code byte, secret string) (Transformer, error) {
	for _, e := range registry {
		if e.code == code {
			return e.factory(secret)
		}
	}
	return nil, oops.
		Code("UNKNOWN_METHOD").
		In("transform").
		With("method_code", code).
		Errorf("unknown transform method code %d", code)
}

// Names returns the names of all registered transforms in code order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}
