package models

// Enrollment ties a student to a course by code. The course is referenced,
// not owned; a zero Grade means the course has not been graded yet.
type Enrollment struct {
	CourseCode string `json:"course_code"`
	Grade      Grade  `json:"grade,omitempty"`
}

// Graded reports whether a letter grade has been recorded.
func (e *Enrollment) Graded() bool {
	return e.Grade != GradeNone
}

// EnrollmentDetail joins an enrollment with its resolved course for
// transcripts and listings. Resolved is false when the course code no
// longer matches a catalogue entry.
type EnrollmentDetail struct {
	CourseCode  string `json:"course_code"`
	CourseTitle string `json:"course_title,omitempty"`
	Credits     int    `json:"credits"`
	Grade       Grade  `json:"grade,omitempty"`
	Resolved    bool   `json:"resolved"`
}
