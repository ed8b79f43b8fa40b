package repository

import (
	"strings"

	"github.com/campus-records/ccrm/internal/models"
)

// CourseRepository provides keyed access to the course catalogue.
type CourseRepository struct {
	db *DB
}

// NewCourseRepository builds a course repository over the shared store.
func NewCourseRepository(db *DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns every course in insertion order.
func (r *CourseRepository) List() []*models.Course {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	courses := make([]*models.Course, 0, len(r.db.courseOrder))
	for _, code := range r.db.courseOrder {
		courses = append(courses, r.db.courses[code])
	}
	return courses
}

// FindByCode resolves a course or reports ErrNoRecord.
func (r *CourseRepository) FindByCode(code string) (*models.Course, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	course, ok := r.db.courses[code]
	if !ok {
		return nil, ErrNoRecord
	}
	return course, nil
}

// Create inserts a new course; ErrDuplicate when the code is taken.
func (r *CourseRepository) Create(course *models.Course) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.courses[course.Code]; ok {
		return ErrDuplicate
	}
	r.db.putCourse(course)
	return nil
}

// Update replaces an existing course, keeping its catalogue position.
// Enrollments reference courses by code, so they observe the new record.
func (r *CourseRepository) Update(course *models.Course) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.courses[course.Code]; !ok {
		return ErrNoRecord
	}
	r.db.putCourse(course)
	return nil
}

// Delete removes a course. Enrollments referencing the code are left in
// place and stop resolving.
func (r *CourseRepository) Delete(code string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.courses[code]; !ok {
		return ErrNoRecord
	}
	r.db.removeCourse(code)
	return nil
}

// Search matches the query case-insensitively against code and title,
// preserving insertion order.
func (r *CourseRepository) Search(query string) []*models.Course {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	q := strings.ToLower(query)
	matches := make([]*models.Course, 0)
	for _, code := range r.db.courseOrder {
		course := r.db.courses[code]
		if strings.Contains(strings.ToLower(course.Code), q) ||
			strings.Contains(strings.ToLower(course.Title), q) {
			matches = append(matches, course)
		}
	}
	return matches
}
