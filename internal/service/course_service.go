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

type courseRepository interface {
	List() []*models.Course
	FindByCode(code string) (*models.Course, error)
	Create(course *models.Course) error
	Update(course *models.Course) error
	Delete(code string) error
	Search(query string) []*models.Course
}

type instructorRepository interface {
	List() []*models.Instructor
	FindByID(id string) (*models.Instructor, error)
}

// CourseRequest holds payload for creating and updating courses. An empty
// instructor or semester leaves the field unassigned.
type CourseRequest struct {
	Code         string `json:"code" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Credits      int    `json:"credits" validate:"gt=0"`
	InstructorID string `json:"instructor_id"`
	Semester     string `json:"semester"`
}

// CourseService handles catalogue use-cases.
type CourseService struct {
	repo        courseRepository
	instructors instructorRepository
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, instructors instructorRepository, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, instructors: instructors, validator: validate, logger: logger}
}

// List returns all courses in catalogue order.
func (s *CourseService) List(ctx context.Context) []*models.Course {
	return s.repo.List()
}

// Get returns a single course.
func (s *CourseService) Get(ctx context.Context, code string) (*models.Course, error) {
	course, err := s.repo.FindByCode(code)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load course")
	}
	return course, nil
}

// Create adds a course to the catalogue.
func (s *CourseService) Create(ctx context.Context, req CourseRequest) (*models.Course, error) {
	course, err := s.buildCourse(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(course); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "course code already used")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create course")
	}
	s.logger.Info("course created", zap.String("code", course.Code), zap.Int("credits", course.Credits))
	return course, nil
}

// Update replaces a catalogue entry. Enrollments reference courses by
// code, so they observe the replacement.
func (s *CourseService) Update(ctx context.Context, code string, req CourseRequest) (*models.Course, error) {
	req.Code = code
	course, err := s.buildCourse(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(course); err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update course")
	}
	s.logger.Info("course updated", zap.String("code", code))
	return course, nil
}

// Delete removes a course. Existing enrollments keep their code and stop
// resolving until the next load drops them.
func (s *CourseService) Delete(ctx context.Context, code string) error {
	if err := s.repo.Delete(code); err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to delete course")
	}
	s.logger.Info("course deleted", zap.String("code", code))
	return nil
}

// Search matches the query against code and title.
func (s *CourseService) Search(ctx context.Context, query string) []*models.Course {
	return s.repo.Search(query)
}

// Instructors returns the directory of known instructors.
func (s *CourseService) Instructors(ctx context.Context) []*models.Instructor {
	return s.instructors.List()
}

func (s *CourseService) buildCourse(req CourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid course payload")
	}
	semester, ok := models.ParseSemester(req.Semester)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "semester must be SPRING, SUMMER or FALL")
	}
	if req.InstructorID != "" {
		if _, err := s.instructors.FindByID(req.InstructorID); err != nil {
			if errors.Is(err, repository.ErrNoRecord) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to resolve instructor")
		}
	}
	return &models.Course{
		Code:         req.Code,
		Title:        req.Title,
		Credits:      req.Credits,
		InstructorID: req.InstructorID,
		Semester:     semester,
	}, nil
}
