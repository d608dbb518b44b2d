// Package models contains data structures for batting statistics
package models

import "math"

// RelativeTolerance is the largest relative difference at which two averages are still equal
const RelativeTolerance = 1e-6

// Batsman holds one player's statistic line
type Batsman struct {
	Initials string
	Surname  string
	Runs     uint32
	Average  float64
}

// Equal reports whether two batsmen match on every field.
// Names and runs must match exactly, averages within RelativeTolerance.
func Equal(a, b Batsman) bool {
	return a.Initials == b.Initials &&
		a.Surname == b.Surname &&
		a.Runs == b.Runs &&
		ApproxEqual(a.Average, b.Average)
}

// Equal reports whether b matches the receiver, see Equal
func (b Batsman) Equal(other Batsman) bool {
	return Equal(b, other)
}

// CompareRuns orders two batsmen by runs alone.
// It returns -1, 0 or +1 like cmp.Compare; names and average are ignored.
func CompareRuns(a, b Batsman) int {
	switch {
	case a.Runs < b.Runs:
		return -1
	case a.Runs > b.Runs:
		return 1
	}
	return 0
}

// ApproxEqual compares two floats using a relative difference threshold
func ApproxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	diff := math.Abs(a - b)
	// Values near zero have no meaningful relative difference
	if diff <= RelativeTolerance {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= largest*RelativeTolerance
}
