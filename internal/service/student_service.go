package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campus-records/ccrm/internal/models"
	"github.com/campus-records/ccrm/internal/repository"
	appErrors "github.com/campus-records/ccrm/pkg/errors"
)

type studentRepository interface {
	List() []*models.Student
	FindByID(id string) (*models.Student, error)
	ExistsByRegNo(regNo string, excludeID string) bool
	Create(student *models.Student) error
	Update(student *models.Student) error
	Delete(id string) error
	Search(query string) []*models.Student
}

// CreateStudentRequest holds payload for registering students.
type CreateStudentRequest struct {
	ID       string `json:"id" validate:"required"`
	RegNo    string `json:"reg_no" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required"`
}

// UpdateStudentRequest holds payload for updating students. Registration
// number and enrollments are not touched by updates.
type UpdateStudentRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// List returns all students in insertion order.
func (s *StudentService) List(ctx context.Context) []*models.Student {
	return s.repo.List()
}

// Get returns a single student.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load student")
	}
	return student, nil
}

// Create registers a new student.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid student payload")
	}
	if s.repo.ExistsByRegNo(req.RegNo, "") {
		return nil, appErrors.Clone(appErrors.ErrConflict, "registration number already used")
	}
	student := &models.Student{
		Person: models.Person{ID: req.ID, FullName: req.FullName, Email: req.Email},
		RegNo:  req.RegNo,
	}
	if err := s.repo.Create(student); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "student id already used")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create student")
	}
	s.logger.Info("student created", zap.String("id", student.ID), zap.String("reg_no", student.RegNo))
	return student, nil
}

// Update replaces the student's name and email, keeping registration
// number and enrollments.
func (s *StudentService) Update(ctx context.Context, id string, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid student payload")
	}
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	student := &models.Student{
		Person:      models.Person{ID: id, FullName: req.FullName, Email: req.Email},
		RegNo:       existing.RegNo,
		Enrollments: existing.Enrollments,
	}
	if err := s.repo.Update(student); err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update student")
	}
	s.logger.Info("student updated", zap.String("id", id))
	return student, nil
}

// Delete removes a student together with the enrollments it owns.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to delete student")
	}
	s.logger.Info("student deleted", zap.String("id", id))
	return nil
}

// Search matches the query against ID, registration number and name.
func (s *StudentService) Search(ctx context.Context, query string) []*models.Student {
	return s.repo.Search(query)
}
