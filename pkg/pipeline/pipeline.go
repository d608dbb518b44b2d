// Package pipeline filters and orders parsed batting records
package pipeline

import (
	"slices"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/myusername/batting-report/pkg/models"
	"github.com/myusername/batting-report/pkg/parser"
)

// DefaultLetter is the surname initial kept when none is configured
const DefaultLetter = 'C'

// Predicate decides whether an item is kept
type Predicate[T any] func(item T) bool

// Filter returns the items matching keep, in their original order.
// The input slice is not modified.
func Filter[T any](items []T, keep Predicate[T]) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

// Sorted returns a stably sorted copy of items, leaving items untouched
func Sorted[T any](items []T, cmp func(a, b T) int) []T {
	result := slices.Clone(items)
	slices.SortStableFunc(result, cmp)
	return result
}

// SurnameStartsWith matches batsmen whose surname begins with letter.
// The comparison is case-sensitive; an empty surname never matches.
func SurnameStartsWith(letter rune) Predicate[models.Batsman] {
	return func(b models.Batsman) bool {
		if b.Surname == "" {
			return false
		}
		first, _ := utf8.DecodeRuneInString(b.Surname)
		return first == letter
	}
}

// ByRunsDescending orders batsmen from most to fewest runs
func ByRunsDescending(a, b models.Batsman) int {
	return models.CompareRuns(b, a)
}

// Pipeline runs parse, filter and sort over a batch of lines
type Pipeline struct {
	Letter rune
	logger *zap.Logger
}

// New creates a Pipeline keeping surnames that start with letter
func New(letter rune, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{Letter: letter, logger: logger}
}

// Run parses every line, keeps the matching batsmen and sorts them by runs, highest first
func (p *Pipeline) Run(lines []string) ([]models.Batsman, error) {
	batsmen, err := parser.ParseLines(lines)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("parsed records", zap.Int("count", len(batsmen)))

	kept := Filter(batsmen, SurnameStartsWith(p.Letter))
	p.logger.Debug("filtered records",
		zap.String("letter", string(p.Letter)),
		zap.Int("kept", len(kept)),
		zap.Int("dropped", len(batsmen)-len(kept)))

	return Sorted(kept, ByRunsDescending), nil
}
