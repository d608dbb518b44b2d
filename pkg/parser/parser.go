// Package parser provides functionality to parse batting records from various formats
package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/myusername/batting-report/pkg/models"
)

var (
	// ErrMalformedLine reports a line without the "<initials> <surname>,<runs>,<average>" shape
	ErrMalformedLine = errors.New("malformed line")
	// ErrInvalidNumber reports a runs or average field that is not a number
	ErrInvalidNumber = errors.New("invalid number")
)

// Field names used in FieldError
const (
	FieldRuns    = "runs"
	FieldAverage = "average"
)

// FieldError describes a numeric field that failed to parse
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %s: %q: %v", ErrInvalidNumber, e.Field, e.Value, e.Err)
}

// Unwrap exposes both ErrInvalidNumber and the underlying conversion error
func (e *FieldError) Unwrap() []error {
	return []error{ErrInvalidNumber, e.Err}
}

// LineError attaches a 1-based line number to a parse failure
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ParseLine parses a single "<initials> <surname>,<runs>,<average>" line
func ParseLine(line string) (models.Batsman, error) {
	var batsman models.Batsman

	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return batsman, fmt.Errorf("%w: expected 3 comma-separated fields, got %d", ErrMalformedLine, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	// Tokens after the surname are ignored
	name := strings.Fields(fields[0])
	if len(name) < 2 {
		return batsman, fmt.Errorf("%w: expected initials and surname in %q", ErrMalformedLine, fields[0])
	}
	batsman.Initials = name[0]
	batsman.Surname = name[1]

	runs, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return batsman, &FieldError{Field: FieldRuns, Value: fields[1], Err: err}
	}
	batsman.Runs = uint32(runs)

	average, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return batsman, &FieldError{Field: FieldAverage, Value: fields[2], Err: err}
	}
	if math.IsNaN(average) || math.IsInf(average, 0) {
		return batsman, &FieldError{Field: FieldAverage, Value: fields[2], Err: errors.New("not a finite number")}
	}
	batsman.Average = math.Round(average)

	return batsman, nil
}

// ParseLines parses every line, stopping at the first failure
func ParseLines(lines []string) ([]models.Batsman, error) {
	batsmen := make([]models.Batsman, 0, len(lines))
	for i, line := range lines {
		batsman, err := ParseLine(line)
		if err != nil {
			return nil, &LineError{Line: i + 1, Err: err}
		}
		batsmen = append(batsmen, batsman)
	}
	return batsmen, nil
}

// SplitLines splits text on LF or CRLF. A trailing newline does not produce an empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// NonBlankLines returns the trimmed lines of text that contain anything besides whitespace
func NonBlankLines(text string) []string {
	var lines []string
	for _, line := range SplitLines(text) {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
