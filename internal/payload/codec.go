// Package payload normalizes file-upload payloads before upstream
// transmission. The upstream API accepts only base64-encoded file content,
// but callers are not required to declare whether they already encoded it.
package payload

import "encoding/base64"

// minEncodedLength is the length below which a payload is always treated as
// plain text. Legitimate encoded files are comfortably longer, while short
// strings ("{}", "true", a one-line JSON document) are overwhelmingly raw
// content that happens to fit the base64 alphabet.
const minEncodedLength = 100

// Normalize returns the transport-ready form of raw: pre-encoded payloads
// pass through byte-identical, anything else is base64-encoded as UTF-8.
//
// Classification is a heuristic. A plain-text payload longer than
// minEncodedLength consisting solely of base64-alphabet characters would be
// misclassified as already encoded; callers that can declare the encoding
// up front should do so instead of relying on inference.
func Normalize(raw string) string {
	if IsEncoded(raw) {
		return raw
	}
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// Encode base64-encodes raw unconditionally, for callers that declared the
// payload as plain text and must not go through classification.
func Encode(raw string) string {
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// IsEncoded reports whether raw is classified as already base64-encoded:
// longer than minEncodedLength and built from the standard base64 alphabet
// with nothing but trailing '=' padding.
func IsEncoded(raw string) bool {
	if len(raw) <= minEncodedLength {
		return false
	}

	padding := 0
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '=' {
			padding++
			continue
		}
		// Padding may only trail.
		if padding > 0 {
			return false
		}
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '+' || c == '/':
		default:
			return false
		}
	}
	return true
}
