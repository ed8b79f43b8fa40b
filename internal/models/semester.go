package models

import "strings"

// Semester identifies the term a course is offered in.
type Semester string

const (
	SemesterSpring Semester = "SPRING"
	SemesterSummer Semester = "SUMMER"
	SemesterFall   Semester = "FALL"

	// SemesterNone marks a course without an assigned semester.
	SemesterNone Semester = ""
)

// ParseSemester maps a token to a Semester. Matching is case-insensitive;
// empty and "N/A" mean no semester. Unknown tokens report false.
func ParseSemester(token string) (Semester, bool) {
	switch s := Semester(strings.ToUpper(strings.TrimSpace(token))); s {
	case SemesterNone, Semester("N/A"):
		return SemesterNone, true
	case SemesterSpring, SemesterSummer, SemesterFall:
		return s, true
	default:
		return SemesterNone, false
	}
}

// String returns the persisted form, "N/A" when no semester is assigned.
func (s Semester) String() string {
	if s == SemesterNone {
		return "N/A"
	}
	return string(s)
}
