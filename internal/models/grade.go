package models

import "strings"

// Grade is a letter grade on the S-to-F scale.
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
	GradeF Grade = "F"

	// GradeNone marks an enrollment that has not been graded yet.
	GradeNone Grade = ""
)

var gradePoints = map[Grade]int{
	GradeS: 10,
	GradeA: 9,
	GradeB: 8,
	GradeC: 7,
	GradeD: 6,
	GradeE: 5,
	GradeF: 0,
}

// Points returns the numeric weight used for GPA calculation.
func (g Grade) Points() int {
	return gradePoints[g]
}

// ParseGrade maps a token to a Grade. Matching is case-insensitive;
// unrecognized tokens, including the empty string, report false.
func ParseGrade(token string) (Grade, bool) {
	g := Grade(strings.ToUpper(strings.TrimSpace(token)))
	if _, ok := gradePoints[g]; !ok {
		return GradeNone, false
	}
	return g, true
}
