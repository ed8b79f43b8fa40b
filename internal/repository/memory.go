package repository

import (
	"errors"
	"sync"

	"github.com/campus-records/ccrm/internal/models"
)

var (
	// ErrNoRecord is returned by lookups that resolve no record.
	ErrNoRecord = errors.New("repository: no matching record")
	// ErrDuplicate is returned when a create collides with an existing key.
	ErrDuplicate = errors.New("repository: record already exists")
)

// DB is the process-wide in-memory store. Tables keep insertion order so
// listings and persisted files stay stable across runs. All repositories
// share one lock; enrollment operations take it across their full
// check-then-act sequence.
type DB struct {
	mu sync.RWMutex

	students     map[string]*models.Student
	studentOrder []string

	courses     map[string]*models.Course
	courseOrder []string

	instructors     map[string]*models.Instructor
	instructorOrder []string
}

// NewDB returns an empty store.
func NewDB() *DB {
	return &DB{
		students:    make(map[string]*models.Student),
		courses:     make(map[string]*models.Course),
		instructors: make(map[string]*models.Instructor),
	}
}

// The put/remove helpers below assume the caller holds mu.

func (db *DB) putStudent(s *models.Student) {
	if _, ok := db.students[s.ID]; !ok {
		db.studentOrder = append(db.studentOrder, s.ID)
	}
	db.students[s.ID] = s
}

func (db *DB) removeStudent(id string) {
	delete(db.students, id)
	db.studentOrder = removeKey(db.studentOrder, id)
}

func (db *DB) putCourse(c *models.Course) {
	if _, ok := db.courses[c.Code]; !ok {
		db.courseOrder = append(db.courseOrder, c.Code)
	}
	db.courses[c.Code] = c
}

func (db *DB) removeCourse(code string) {
	delete(db.courses, code)
	db.courseOrder = removeKey(db.courseOrder, code)
}

func (db *DB) putInstructor(i *models.Instructor) {
	if _, ok := db.instructors[i.ID]; !ok {
		db.instructorOrder = append(db.instructorOrder, i.ID)
	}
	db.instructors[i.ID] = i
}

func removeKey(order []string, key string) []string {
	for i, k := range order {
		if k == key {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
