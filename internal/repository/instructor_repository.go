package repository

import "github.com/campus-records/ccrm/internal/models"

// InstructorRepository provides keyed access to the instructor table.
type InstructorRepository struct {
	db *DB
}

// NewInstructorRepository builds an instructor repository over the shared
// store.
func NewInstructorRepository(db *DB) *InstructorRepository {
	return &InstructorRepository{db: db}
}

// List returns every instructor in insertion order.
func (r *InstructorRepository) List() []*models.Instructor {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	instructors := make([]*models.Instructor, 0, len(r.db.instructorOrder))
	for _, id := range r.db.instructorOrder {
		instructors = append(instructors, r.db.instructors[id])
	}
	return instructors
}

// FindByID resolves an instructor or reports ErrNoRecord.
func (r *InstructorRepository) FindByID(id string) (*models.Instructor, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	instructor, ok := r.db.instructors[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return instructor, nil
}

// Put inserts or replaces an instructor. Used by seeding.
func (r *InstructorRepository) Put(instructor *models.Instructor) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.putInstructor(instructor)
}
