package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-records/ccrm/internal/models"
	"github.com/campus-records/ccrm/internal/repository"
	appErrors "github.com/campus-records/ccrm/pkg/errors"
)

func newEnrollmentServiceForTest(t *testing.T) *EnrollmentService {
	t.Helper()
	db := repository.NewDB()
	students := repository.NewStudentRepository(db)
	courses := repository.NewCourseRepository(db)

	require.NoError(t, students.Create(&models.Student{Person: models.Person{ID: "S1", FullName: "Alice Smith"}, RegNo: "2024CS001"}))
	require.NoError(t, courses.Create(&models.Course{Code: "CS101", Title: "Intro to Programming", Credits: 3}))
	require.NoError(t, courses.Create(&models.Course{Code: "MA201", Title: "Calculus", Credits: 4}))
	require.NoError(t, courses.Create(&models.Course{Code: "PH301", Title: "Lab Block", Credits: 18}))

	return NewEnrollmentService(repository.NewEnrollmentRepository(db), students, 20, validator.New(), zap.NewNop())
}

func TestEnrollmentServiceEnroll(t *testing.T) {
	svc := newEnrollmentServiceForTest(t)

	require.NoError(t, svc.Enroll(context.Background(), EnrollmentRequest{StudentID: "S1", CourseCode: "CS101"}))

	credits, err := svc.CurrentCredits(context.Background(), "S1")
	require.NoError(t, err)
	assert.Equal(t, 3, credits)
}

func TestEnrollmentServiceEnrollValidation(t *testing.T) {
	svc := newEnrollmentServiceForTest(t)

	err := svc.Enroll(context.Background(), EnrollmentRequest{StudentID: "S1"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestEnrollmentServiceEnrollUnknownPair(t *testing.T) {
	svc := newEnrollmentServiceForTest(t)

	err := svc.Enroll(context.Background(), EnrollmentRequest{StudentID: "ghost", CourseCode: "CS101"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	err = svc.Enroll(context.Background(), EnrollmentRequest{StudentID: "S1", CourseCode: "CS999"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestEnrollmentServiceEnrollDuplicate(t *testing.T) {
	svc := newEnrollmentServiceForTest(t)

	require.NoError(t, svc.Enroll(context.Background(), EnrollmentRequest{StudentID: "S1", CourseCode: "CS101"}))

	err := svc.Enroll(context.Background(), EnrollmentRequest{StudentID: "S1", CourseCode: "CS101"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicateEnrollment.Code, appErrors.FromError(err).Code)
}

func TestEnrollmentServiceEnrollCreditLimit(t *testing.T) {
	svc := newEnrollmentServiceForTest(t)

	require.NoError(t, svc.Enroll(context.Background(), EnrollmentRequest{StudentID: "S1", CourseCode: "CS101"}))

	err := svc.Enroll(context.Background(), EnrollmentRequest{StudentID: "S1", CourseCode: "PH301"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrCreditLimitExceeded.Code, appErrors.FromError(err).Code)

	credits, err := svc.CurrentCredits(context.Background(), "S1")
	require.NoError(t, err)
	assert.Equal(t, 3, credits)
}

func TestEnrollmentServiceUnenroll(t *testing.T) {
	svc := newEnrollmentServiceForTest(t)

	require.NoError(t, svc.Enroll(context.Background(), EnrollmentRequest{StudentID: "S1", CourseCode: "CS101"}))
	require.NoError(t, svc.Unenroll(context.Background(), EnrollmentRequest{StudentID: "S1", CourseCode: "CS101"}))

	credits, err := svc.CurrentCredits(context.Background(), "S1")
	require.NoError(t, err)
	assert.Equal(t, 0, credits)

	err = svc.Unenroll(context.Background(), EnrollmentRequest{StudentID: "S1", CourseCode: "CS101"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotEnrolled.Code, appErrors.FromError(err).Code)
}

func TestEnrollmentServiceRecordGrade(t *testing.T) {
	svc := newEnrollmentServiceForTest(t)

	require.NoError(t, svc.Enroll(context.Background(), EnrollmentRequest{StudentID: "S1", CourseCode: "CS101"}))
	require.NoError(t, svc.Enroll(context.Background(), EnrollmentRequest{StudentID: "S1", CourseCode: "MA201"}))

	require.NoError(t, svc.RecordGrade(context.Background(), RecordGradeRequest{StudentID: "S1", CourseCode: "CS101", Grade: "a"}))

	gpa, err := svc.GPA(context.Background(), "S1")
	require.NoError(t, err)
	assert.InDelta(t, 9.0, gpa, 0.0001)

	require.NoError(t, svc.RecordGrade(context.Background(), RecordGradeRequest{StudentID: "S1", CourseCode: "MA201", Grade: "C"}))

	gpa, err = svc.GPA(context.Background(), "S1")
	require.NoError(t, err)
	assert.InDelta(t, 55.0/7.0, gpa, 0.0001)
}

func TestEnrollmentServiceRecordGradeUnknownStudentWins(t *testing.T) {
	svc := newEnrollmentServiceForTest(t)

	err := svc.RecordGrade(context.Background(), RecordGradeRequest{StudentID: "ghost", CourseCode: "CS101", Grade: "Z"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestEnrollmentServiceRecordGradeBadToken(t *testing.T) {
	svc := newEnrollmentServiceForTest(t)

	require.NoError(t, svc.Enroll(context.Background(), EnrollmentRequest{StudentID: "S1", CourseCode: "CS101"}))

	err := svc.RecordGrade(context.Background(), RecordGradeRequest{StudentID: "S1", CourseCode: "CS101", Grade: "Z"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidGrade.Code, appErrors.FromError(err).Code)

	details, err := svc.Enrollments(context.Background(), "S1")
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, models.GradeNone, details[0].Grade)
}

func TestEnrollmentServiceRecordGradeNotEnrolled(t *testing.T) {
	svc := newEnrollmentServiceForTest(t)

	err := svc.RecordGrade(context.Background(), RecordGradeRequest{StudentID: "S1", CourseCode: "CS101", Grade: "A"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotEnrolled.Code, appErrors.FromError(err).Code)
}

func TestEnrollmentServiceGPAUngraded(t *testing.T) {
	svc := newEnrollmentServiceForTest(t)

	require.NoError(t, svc.Enroll(context.Background(), EnrollmentRequest{StudentID: "S1", CourseCode: "CS101"}))

	gpa, err := svc.GPA(context.Background(), "S1")
	require.NoError(t, err)
	assert.Zero(t, gpa)
}
