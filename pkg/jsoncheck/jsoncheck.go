package jsoncheck

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
)

const DefaultPath = "package.json"

// SyntaxError locates a parse failure by line and column.
type SyntaxError struct {
	Line   int
	Column int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Validate reads path and parses it as a JSON document. The raw file content
// is returned along with any parse error.
func Validate(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	return data, Check(data)
}

func Check(data []byte) error {
	var doc interface{}
	err := json.Unmarshal(data, &doc)
	if err == nil {
		return nil
	}

	var synErr *json.SyntaxError
	if !errors.As(err, &synErr) {
		return err
	}

	// Offset counts the offending byte as read
	line, col := position(data, synErr.Offset-1)
	return &SyntaxError{Line: line, Column: col, Err: err}
}

func position(data []byte, offset int64) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line := bytes.Count(before, []byte("\n")) + 1
	col := len(before) - bytes.LastIndexByte(before, '\n')
	return line, col
}

// Report prints a one line verdict for path.
func Report(w io.Writer, path string, err error) {
	if err != nil {
		fmt.Fprintf(w, "❌ %s is not valid JSON: %s\n", path, err)
		return
	}
	fmt.Fprintf(w, "✅ %s is valid JSON\n", path)
}

// Pretty indents data and, when color is set, adds terminal colours.
func Pretty(data []byte, color bool) []byte {
	out := pretty.Pretty(data)
	if color {
		out = pretty.Color(out, nil)
	}
	return out
}
