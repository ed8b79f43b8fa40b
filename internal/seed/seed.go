package seed

import (
	"go.uber.org/zap"

	"github.com/campus-records/ccrm/internal/models"
	"github.com/campus-records/ccrm/internal/repository"
)

// Run inserts the records the application expects before any data file is
// read. Instructors are not persisted, so catalogue references resolve
// against this set.
func Run(instructors *repository.InstructorRepository, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	defaults := []*models.Instructor{
		{Person: models.Person{ID: "I001", FullName: "Dr. Jane Doe", Email: "jdoe@ccrm.edu"}},
	}
	for _, instructor := range defaults {
		instructors.Put(instructor)
		logger.Info("seeded instructor", zap.String("id", instructor.ID), zap.String("name", instructor.FullName))
	}
}
