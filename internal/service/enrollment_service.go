package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campus-records/ccrm/internal/models"
	appErrors "github.com/campus-records/ccrm/pkg/errors"
)

type enrollmentRepository interface {
	Enroll(studentID, courseCode string, maxCredits int) error
	Unenroll(studentID, courseCode string) error
	SetGrade(studentID, courseCode string, grade models.Grade) error
	CurrentCredits(studentID string) (int, error)
	GPA(studentID string) (float64, error)
	ListByStudent(studentID string) ([]models.EnrollmentDetail, error)
}

// EnrollmentRequest identifies a (student, course) pair.
type EnrollmentRequest struct {
	StudentID  string `json:"student_id" validate:"required"`
	CourseCode string `json:"course_code" validate:"required"`
}

// RecordGradeRequest carries a raw grade token for an enrollment.
type RecordGradeRequest struct {
	StudentID  string `json:"student_id" validate:"required"`
	CourseCode string `json:"course_code" validate:"required"`
	Grade      string `json:"grade" validate:"required"`
}

// EnrollmentService coordinates enrollment and grading.
type EnrollmentService struct {
	repo       enrollmentRepository
	students   studentRepository
	maxCredits int
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewEnrollmentService constructs the enrollment service. maxCredits
// bounds the total credits a student may carry; non-positive values fall
// back to 20.
func NewEnrollmentService(repo enrollmentRepository, students studentRepository, maxCredits int, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if maxCredits <= 0 {
		maxCredits = 20
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{
		repo:       repo,
		students:   students,
		maxCredits: maxCredits,
		validator:  validate,
		logger:     logger,
	}
}

// Enroll adds an ungraded enrollment once the pair resolves, the student
// is not already enrolled, and the course fits under the credit ceiling.
func (s *EnrollmentService) Enroll(ctx context.Context, req EnrollmentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid enrollment payload")
	}
	if err := s.repo.Enroll(req.StudentID, req.CourseCode, s.maxCredits); err != nil {
		return err
	}
	s.logger.Info("student enrolled", zap.String("student_id", req.StudentID), zap.String("course", req.CourseCode))
	return nil
}

// Unenroll removes the enrollment matching the course code. The course
// record itself may already be gone.
func (s *EnrollmentService) Unenroll(ctx context.Context, req EnrollmentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid enrollment payload")
	}
	if err := s.repo.Unenroll(req.StudentID, req.CourseCode); err != nil {
		return err
	}
	s.logger.Info("student unenrolled", zap.String("student_id", req.StudentID), zap.String("course", req.CourseCode))
	return nil
}

// RecordGrade parses the grade token and sets it on the enrollment. The
// student is resolved before the token is inspected, and a bad token
// leaves the recorded grade untouched.
func (s *EnrollmentService) RecordGrade(ctx context.Context, req RecordGradeRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid grade payload")
	}
	if _, err := s.students.FindByID(req.StudentID); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	grade, ok := models.ParseGrade(req.Grade)
	if !ok {
		return appErrors.Clone(appErrors.ErrInvalidGrade, "grade must be one of S, A, B, C, D, E, F")
	}
	if err := s.repo.SetGrade(req.StudentID, req.CourseCode, grade); err != nil {
		return err
	}
	s.logger.Info("grade recorded",
		zap.String("student_id", req.StudentID),
		zap.String("course", req.CourseCode),
		zap.String("grade", string(grade)))
	return nil
}

// GPA returns the student's credit-weighted grade point average.
func (s *EnrollmentService) GPA(ctx context.Context, studentID string) (float64, error) {
	return s.repo.GPA(studentID)
}

// CurrentCredits returns the student's total enrolled credits.
func (s *EnrollmentService) CurrentCredits(ctx context.Context, studentID string) (int, error) {
	return s.repo.CurrentCredits(studentID)
}

// Enrollments returns the student's enrollments with resolved courses.
func (s *EnrollmentService) Enrollments(ctx context.Context, studentID string) ([]models.EnrollmentDetail, error) {
	return s.repo.ListByStudent(studentID)
}
