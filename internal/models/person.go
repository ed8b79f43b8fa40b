package models

// Displayable is implemented by record types that can render a profile for
// the interactive shell.
type Displayable interface {
	Profile() []string
}

// Person carries the identity fields shared by students and instructors.
type Person struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
