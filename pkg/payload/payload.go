// Package payload embeds structured Go values in data-* attributes.
//
// Pages render ahead of time, so state that client-side scripts need
// has to travel inside the document. A Codec packs a value with msgpack
// and base64-encodes it; with a key, the encoding carries an HMAC
// signature so values that round-trip through a client can be trusted:
//
//	codec := payload.NewSignedCodec(secret)
//	attr, _ := codec.Attr("filters", filters)
//	// <div data-filters="kgKjZm9v.9pXN0aW">
//
// Signed payloads are visible but tamper-proof. Nothing here encrypts;
// do not embed secrets.
package payload

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/markout-dev/markout/pkg/node"
)

// ErrBadSignature is returned when a signed payload fails verification.
var ErrBadSignature = errors.New("payload: signature verification failed")

// ErrMissingSignature is returned when a signed codec decodes a payload
// without a signature part.
var ErrMissingSignature = errors.New("payload: missing signature")

// Codec encodes values for embedding in attributes. The zero value
// encodes without signing; NewSignedCodec adds an HMAC-SHA256
// signature.
type Codec struct {
	key []byte
}

// NewCodec creates an unsigned codec.
func NewCodec() *Codec {
	return &Codec{}
}

// NewSignedCodec creates a codec that signs payloads with the given
// key. Keys shorter than 32 bytes are stretched through SHA-256.
func NewSignedCodec(key []byte) *Codec {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}
	return &Codec{key: key}
}

// Encode serializes v into an attribute-safe string: msgpack, base64,
// and a ".sig" suffix when the codec is keyed.
func (c *Codec) Encode(v any) (string, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return "", err
	}

	b64 := base64.RawURLEncoding.EncodeToString(packed)
	if c.key == nil {
		return b64, nil
	}
	return b64 + "." + c.signature(packed), nil
}

// Decode reverses Encode into out. Signed codecs verify the signature
// before unpacking.
func (c *Codec) Decode(encoded string, out any) error {
	data := encoded
	if c.key != nil {
		parts := strings.SplitN(encoded, ".", 2)
		if len(parts) != 2 {
			return ErrMissingSignature
		}
		data = parts[0]

		packed, err := base64.RawURLEncoding.DecodeString(parts[0])
		if err != nil {
			return err
		}
		sig, err := base64.RawURLEncoding.DecodeString(parts[1])
		if err != nil {
			return err
		}
		if !hmac.Equal(sig, c.mac(packed)) {
			return ErrBadSignature
		}
	}

	packed, err := base64.RawURLEncoding.DecodeString(data)
	if err != nil {
		return err
	}
	return msgpack.Unmarshal(packed, out)
}

// Attr encodes v into a data-* attribute node:
//
//	codec.Attr("page", state) // data-page="..."
func (c *Codec) Attr(name string, v any) (*node.Node, error) {
	encoded, err := c.Encode(v)
	if err != nil {
		return nil, err
	}
	return node.Data(name, encoded), nil
}

func (c *Codec) signature(packed []byte) string {
	return base64.RawURLEncoding.EncodeToString(c.mac(packed))
}

// mac computes a truncated HMAC-SHA256. 16 bytes = 128 bits.
func (c *Codec) mac(packed []byte) []byte {
	mac := hmac.New(sha256.New, c.key)
	mac.Write(packed)
	return mac.Sum(nil)[:16]
}
