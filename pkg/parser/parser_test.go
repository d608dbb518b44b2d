package parser

import (
	"errors"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myusername/batting-report/pkg/models"
)

func TestParseLine(t *testing.T) {
	batsman, err := ParseLine("AB Clarke,120,45.6")
	require.NoError(t, err)
	assert.Equal(t, models.Batsman{Initials: "AB", Surname: "Clarke", Runs: 120, Average: 46}, batsman)
}

func TestParseLine_TrimsFields(t *testing.T) {
	batsman, err := ParseLine("  EF   Cook , 150 ,\t50.4  ")
	require.NoError(t, err)
	assert.Equal(t, "EF", batsman.Initials)
	assert.Equal(t, "Cook", batsman.Surname)
	assert.Equal(t, uint32(150), batsman.Runs)
	assert.Equal(t, 50.0, batsman.Average)
}

func TestParseLine_IgnoresExtraNameTokens(t *testing.T) {
	batsman, err := ParseLine("GH Cullen Jr,150,20.0")
	require.NoError(t, err)
	assert.Equal(t, "GH", batsman.Initials)
	assert.Equal(t, "Cullen", batsman.Surname)
}

func TestParseLine_RunsRoundTrip(t *testing.T) {
	for _, runs := range []uint32{0, 1, 99, 4294967295} {
		text := strconv.FormatUint(uint64(runs), 10)
		batsman, err := ParseLine("AB Clarke," + text + ",1.0")
		require.NoError(t, err, text)
		assert.Equal(t, runs, batsman.Runs)
	}
}

func TestParseLine_RoundsAverage(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"2.4", 2},
		{"2.5", 3},
		{"2.6", 3},
		{"3.5", 4},
		{"0.49", 0},
		{"-2.5", -3},
		{"45", 45},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			batsman, err := ParseLine("AB Clarke,10," + tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, batsman.Average)
		})
	}
}

func TestParseLine_Structural(t *testing.T) {
	tests := []string{
		"AB,120,45.6",
		"AB Clarke,120",
		"AB Clarke",
		"AB Clarke,120,45.6,7",
		"",
		" ,120,45.6",
	}

	for _, line := range tests {
		t.Run(line, func(t *testing.T) {
			_, err := ParseLine(line)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedLine)
			assert.NotErrorIs(t, err, ErrInvalidNumber)
		})
	}
}

func TestParseLine_InvalidRuns(t *testing.T) {
	for _, runs := range []string{"abc", "-5", "12.5", "4294967296", ""} {
		_, err := ParseLine("AB Clarke," + runs + ",45.6")
		require.Error(t, err, runs)
		assert.ErrorIs(t, err, ErrInvalidNumber)

		var fieldErr *FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, FieldRuns, fieldErr.Field)
		assert.Contains(t, err.Error(), "runs")
	}
}

func TestParseLine_InvalidAverage(t *testing.T) {
	for _, average := range []string{"abc", "", "NaN", "Inf"} {
		_, err := ParseLine("AB Clarke,120," + average)
		require.Error(t, err, average)

		var fieldErr *FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, FieldAverage, fieldErr.Field)
		assert.ErrorIs(t, err, ErrInvalidNumber)
	}
}

func TestParseLines(t *testing.T) {
	batsmen, err := ParseLines([]string{"AB Clarke,120,45.6", "CD Smith,80,30.1"})
	require.NoError(t, err)
	require.Len(t, batsmen, 2)
	assert.Equal(t, "Smith", batsmen[1].Surname)
}

func TestParseLines_ReportsLineNumber(t *testing.T) {
	_, err := ParseLines([]string{"AB Clarke,120,45.6", "AB Clarke,abc,45.6"})
	require.Error(t, err)

	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Line)
	assert.ErrorIs(t, err, ErrInvalidNumber)
	assert.Contains(t, err.Error(), "line 2")
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}

func TestNonBlankLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, NonBlankLines("  a \n\n\t\nb\r\n"))
}

func TestExtractRecordLines(t *testing.T) {
	html := `<html><body>
<table>
  <tr><th>Name</th><th>Runs</th><th>Average</th></tr>
  <tr><td>Name</td><td>Runs</td><td>Average</td></tr>
  <tr><td> AB Clarke </td><td>120</td><td>45.6</td><td>extra</td></tr>
  <tr><td>CD Smith</td><td>80</td><td>30.1</td></tr>
  <tr><td colspan="2">Totals</td></tr>
</table>
</body></html>`

	lines, err := ExtractRecordLines(html)
	require.NoError(t, err)
	assert.Equal(t, []string{"AB Clarke,120,45.6", "CD Smith,80,30.1"}, lines)

	batsmen, err := ParseLines(lines)
	require.NoError(t, err)
	assert.Len(t, batsmen, 2)
}

func TestReadPDFText_MissingFile(t *testing.T) {
	_, err := ReadPDFText(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error opening PDF")
}
