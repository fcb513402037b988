// Package extract obtains searchable text from plain files and from entries
// inside jar (zip) archives. Failures are returned as classified Error
// values so callers can dispatch on kind rather than on message text.
package extract

import (
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// File reads path and decodes its content as text.
// The decode chain is UTF-8 first, then ISO-8859-1, then the raw bytes as a
// last resort. ISO-8859-1 maps every byte to a code point, so the chain
// itself cannot fail; only the read can, and that failure is classified.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", classifyReadError(path, "", err)
	}
	return decodeText(data), nil
}

// decodeText decodes file bytes with the plain-file fallback chain.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// Last resort: raw bytes, invalid sequences survive unchanged.
		return string(data)
	}
	return string(decoded)
}

// decodeEntryText decodes archive entry bytes as UTF-8 without a fallback
// chain. The conversion is replacement-tolerant: invalid sequences pass
// through, so binary-ish .class entries remain searchable for ASCII queries.
func decodeEntryText(data []byte) string {
	return string(data)
}
