package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/specialistvlad/contractcfg/internal/config"
	"github.com/tidwall/jsonc"
)

// parseJSON decodes a JSON document. Comments and trailing commas are blanked
// out first; jsonc keeps every byte offset, so reported positions match the
// input.
func parseJSON(data []byte) (any, error) {
	stripped := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(stripped)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(stripped))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, jsonError(stripped, err, dec.InputOffset())
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		line, col := lineCol(stripped, dec.InputOffset())
		return nil, &config.ParseError{Line: line, Column: col, Msg: "unexpected data after the top-level value"}
	}
	return tree, nil
}

func jsonError(data []byte, err error, fallback int64) error {
	offset := fallback
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		offset = syntaxErr.Offset
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		offset = int64(len(data))
	}
	line, col := lineCol(data, offset)
	return &config.ParseError{Line: line, Column: col, Msg: "invalid JSON", Err: err}
}

// lineCol converts a byte offset into a 1-based line and column.
func lineCol(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	if offset < 0 {
		offset = 0
	}
	prefix := data[:offset]
	line := bytes.Count(prefix, []byte("\n")) + 1
	col := int(offset) - bytes.LastIndexByte(prefix, '\n')
	return line, col
}
