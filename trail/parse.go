package trail

import (
	"fmt"
	"strings"

	"github.com/maisem/hoofit/aoc"
)

// ParseError is returned by Parse when the input is not one or more lines
// of digits.
type ParseError struct {
	Line   int // 1-based
	Column int // 1-based
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failed at line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Parse reads a height map from input. Each line is a row, top to bottom,
// and each digit in a line is a cell at its character index. Other
// characters are skipped, so irregular grids are accepted, but every line
// must hold at least one digit. A single trailing line ending is allowed.
func Parse(input string) (HeightMap, error) {
	if input == "" {
		return nil, &ParseError{Line: 1, Column: 1, Msg: "empty input"}
	}
	lines := strings.Split(strings.TrimSuffix(input, "\n"), "\n")
	m := make(HeightMap)
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		x := 0
		found := false
		for _, r := range line {
			if h, ok := aoc.Digit(r); ok {
				m[aoc.Pt{X: x, Y: y}] = h
				found = true
			}
			x++
		}
		if !found {
			return nil, &ParseError{Line: y + 1, Column: 1, Msg: "expected at least one digit"}
		}
	}
	return m, nil
}
