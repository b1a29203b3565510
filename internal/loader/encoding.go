package loader

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// toUTF8 strips a UTF-8 byte order mark and decodes UTF-16 documents that
// start with one. Input without a BOM is treated as UTF-8.
func toUTF8(data []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, err
	}
	return out, nil
}
