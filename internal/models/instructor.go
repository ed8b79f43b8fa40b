package models

// Instructor teaches courses and is referenced by course records through
// its identifier.
type Instructor struct {
	Person
}

// Profile renders the instructor's identity block for the shell.
func (i *Instructor) Profile() []string {
	return []string{
		"ID: " + i.ID,
		"Name: " + i.FullName,
		"Email: " + i.Email,
	}
}
