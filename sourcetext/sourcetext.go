// Package sourcetext reads model source files in a declared character
// encoding before handing the decoded text to the compiler's lexer.
// UTF-8 needs no decoding step; the other encodings are supported the way
// the teacher supports them for its Sequence type (sequence-string.go):
// named encodings backed by golang.org/x/text/encoding implementations.
package sourcetext

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

var (
	encLatin1 = charmap.Windows1252
	encUTF16  = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	encUTF32  = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
)

// ValidEncodings is the list of encoding names Read accepts.
var ValidEncodings = []string{"utf8", "latin1", "utf16", "utf32"}

// Read decodes every byte of r as the named encoding and returns the
// resulting UTF-8 text. An empty or "utf8" encoding name performs no
// decoding step.
func Read(r io.Reader, encoding string) (string, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("sourcetext: %w", err)
	}
	switch encoding {
	case "", "utf8":
		return string(raw), nil
	case "latin1":
		return decodeWith(encLatin1.NewDecoder().Reader(bytes.NewReader(raw)))
	case "utf16":
		return decodeWith(encUTF16.NewDecoder().Reader(bytes.NewReader(raw)))
	case "utf32":
		return decodeWith(encUTF32.NewDecoder().Reader(bytes.NewReader(raw)))
	default:
		return "", fmt.Errorf("sourcetext: unsupported encoding %q (want one of %v)", encoding, ValidEncodings)
	}
}

func decodeWith(r io.Reader) (string, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("sourcetext: decode: %w", err)
	}
	return string(b), nil
}
