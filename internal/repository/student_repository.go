package repository

import (
	"strings"

	"github.com/campus-records/ccrm/internal/models"
)

// StudentRepository provides keyed access to the student table.
type StudentRepository struct {
	db *DB
}

// NewStudentRepository builds a student repository over the shared store.
func NewStudentRepository(db *DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns every student in insertion order.
func (r *StudentRepository) List() []*models.Student {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	students := make([]*models.Student, 0, len(r.db.studentOrder))
	for _, id := range r.db.studentOrder {
		students = append(students, r.db.students[id])
	}
	return students
}

// FindByID resolves a student or reports ErrNoRecord.
func (r *StudentRepository) FindByID(id string) (*models.Student, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	student, ok := r.db.students[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return student, nil
}

// ExistsByRegNo checks if a student with the given registration number
// exists, optionally excluding an ID.
func (r *StudentRepository) ExistsByRegNo(regNo string, excludeID string) bool {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, student := range r.db.students {
		if student.RegNo == regNo && student.ID != excludeID {
			return true
		}
	}
	return false
}

// Create inserts a new student record; ErrDuplicate when the ID is taken.
func (r *StudentRepository) Create(student *models.Student) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.students[student.ID]; ok {
		return ErrDuplicate
	}
	r.db.putStudent(student)
	return nil
}

// Update replaces an existing student, keeping its list position.
func (r *StudentRepository) Update(student *models.Student) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.students[student.ID]; !ok {
		return ErrNoRecord
	}
	r.db.putStudent(student)
	return nil
}

// Delete removes a student and, with it, the enrollments it owns.
func (r *StudentRepository) Delete(id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.students[id]; !ok {
		return ErrNoRecord
	}
	r.db.removeStudent(id)
	return nil
}

// Search matches the query case-insensitively against ID, registration
// number and full name, preserving insertion order.
func (r *StudentRepository) Search(query string) []*models.Student {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	q := strings.ToLower(query)
	matches := make([]*models.Student, 0)
	for _, id := range r.db.studentOrder {
		student := r.db.students[id]
		if strings.Contains(strings.ToLower(student.ID), q) ||
			strings.Contains(strings.ToLower(student.RegNo), q) ||
			strings.Contains(strings.ToLower(student.FullName), q) {
			matches = append(matches, student)
		}
	}
	return matches
}
