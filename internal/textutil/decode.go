package textutil

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned for encoding names LookupEncoding does not support.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// ErrInvalidUTF8 is returned when UTF-8 input contains an invalid byte sequence.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8BOM,
	"utf8":         unicode.UTF8BOM,
	"utf-16":       unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf16":        unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// SupportedEncodings lists the canonical encoding names.
func SupportedEncodings() []string {
	return []string{"utf-8", "utf-16", "latin1", "windows-1252"}
}

// LookupEncoding resolves a configured encoding name. An empty name means UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "utf-8"
	}
	enc, ok := encodings[key]
	if !ok {
		return nil, fmt.Errorf("%w %q (supported: %s)", ErrUnknownEncoding, name, strings.Join(SupportedEncodings(), ", "))
	}
	return enc, nil
}

// Decode converts data from enc to a UTF-8 string. A nil encoding is treated as UTF-8.
// UTF-8 input has a leading byte order mark removed and must otherwise be valid;
// the first bad byte is reported with ErrInvalidUTF8.
func Decode(enc encoding.Encoding, data []byte) (string, error) {
	if enc == nil || enc == unicode.UTF8BOM || enc == unicode.UTF8 {
		trimmed := bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(trimmed) {
			return "", fmt.Errorf("decode text at byte %d: %w", invalidOffset(trimmed), ErrInvalidUTF8)
		}
		return string(trimmed), nil
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return string(out), nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}
