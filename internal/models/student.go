package models

// Student represents a learner registered in the institution.
type Student struct {
	Person
	RegNo       string        `json:"reg_no"`
	Enrollments []*Enrollment `json:"enrollments,omitempty"`
}

// Profile renders the student's identity block for the shell.
func (s *Student) Profile() []string {
	return []string{
		"ID: " + s.ID,
		"Registration No: " + s.RegNo,
		"Name: " + s.FullName,
		"Email: " + s.Email,
	}
}

// Transcript is the full academic record view for a single student.
type Transcript struct {
	Student        Student            `json:"student"`
	Lines          []EnrollmentDetail `json:"lines"`
	CurrentCredits int                `json:"current_credits"`
	GPA            float64            `json:"gpa"`
}
