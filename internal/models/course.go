package models

// Course describes a catalogue entry students can enroll in. InstructorID
// is empty while no instructor is assigned.
type Course struct {
	Code         string   `json:"code"`
	Title        string   `json:"title"`
	Credits      int      `json:"credits"`
	InstructorID string   `json:"instructor_id,omitempty"`
	Semester     Semester `json:"semester,omitempty"`
}
