package repository

import (
	"github.com/campus-records/ccrm/internal/models"
	appErrors "github.com/campus-records/ccrm/pkg/errors"
)

// EnrollmentRepository owns the enrollment records hanging off each
// student. Every operation runs as one critical section over the shared
// store, so its check-then-act sequences stay atomic.
type EnrollmentRepository struct {
	db *DB
}

// NewEnrollmentRepository builds an enrollment repository over the shared
// store.
func NewEnrollmentRepository(db *DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Enroll appends an ungraded enrollment after validating, in order: both
// records exist, the student is not already enrolled, and the course's
// credits fit under maxCredits.
func (r *EnrollmentRepository) Enroll(studentID, courseCode string, maxCredits int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	student, ok := r.db.students[studentID]
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	course, ok := r.db.courses[courseCode]
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	for _, e := range student.Enrollments {
		if e.CourseCode == courseCode {
			return appErrors.Clone(appErrors.ErrDuplicateEnrollment, "student is already enrolled in this course")
		}
	}

	if r.creditsOf(student)+course.Credits > maxCredits {
		return appErrors.Clone(appErrors.ErrCreditLimitExceeded, "enrolling in this course would exceed the maximum credit limit")
	}

	student.Enrollments = append(student.Enrollments, &models.Enrollment{CourseCode: courseCode})
	return nil
}

// Unenroll removes the first enrollment matching courseCode. The course
// record itself need not exist anymore.
func (r *EnrollmentRepository) Unenroll(studentID, courseCode string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	student, ok := r.db.students[studentID]
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	for i, e := range student.Enrollments {
		if e.CourseCode == courseCode {
			student.Enrollments = append(student.Enrollments[:i], student.Enrollments[i+1:]...)
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotEnrolled, "student is not enrolled in this course")
}

// SetGrade records or overwrites the letter grade on an existing
// enrollment.
func (r *EnrollmentRepository) SetGrade(studentID, courseCode string, grade models.Grade) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	student, ok := r.db.students[studentID]
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	for _, e := range student.Enrollments {
		if e.CourseCode == courseCode {
			e.Grade = grade
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotEnrolled, "student is not enrolled in this course")
}

// CurrentCredits sums resolved course credits over all of the student's
// enrollments, graded or not. Codes that no longer resolve contribute
// nothing.
func (r *EnrollmentRepository) CurrentCredits(studentID string) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	student, ok := r.db.students[studentID]
	if !ok {
		return 0, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return r.creditsOf(student), nil
}

// GPA returns the credit-weighted mean of grade points over graded
// enrollments whose course still resolves, 0.0 when none qualify.
func (r *EnrollmentRepository) GPA(studentID string) (float64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	student, ok := r.db.students[studentID]
	if !ok {
		return 0, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return r.gpaOf(student), nil
}

// ListByStudent returns the student's enrollments joined with their
// resolved courses, in enrollment order.
func (r *EnrollmentRepository) ListByStudent(studentID string) ([]models.EnrollmentDetail, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	student, ok := r.db.students[studentID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	details := make([]models.EnrollmentDetail, 0, len(student.Enrollments))
	for _, e := range student.Enrollments {
		detail := models.EnrollmentDetail{
			CourseCode: e.CourseCode,
			Grade:      e.Grade,
		}
		if course, ok := r.db.courses[e.CourseCode]; ok {
			detail.CourseTitle = course.Title
			detail.Credits = course.Credits
			detail.Resolved = true
		}
		details = append(details, detail)
	}
	return details, nil
}

// creditsOf and gpaOf assume the caller holds mu.

func (r *EnrollmentRepository) creditsOf(student *models.Student) int {
	total := 0
	for _, e := range student.Enrollments {
		if course, ok := r.db.courses[e.CourseCode]; ok {
			total += course.Credits
		}
	}
	return total
}

func (r *EnrollmentRepository) gpaOf(student *models.Student) float64 {
	totalPoints := 0
	totalCredits := 0
	for _, e := range student.Enrollments {
		if !e.Graded() {
			continue
		}
		course, ok := r.db.courses[e.CourseCode]
		if !ok {
			continue
		}
		totalPoints += e.Grade.Points() * course.Credits
		totalCredits += course.Credits
	}
	if totalCredits == 0 {
		return 0
	}
	return float64(totalPoints) / float64(totalCredits)
}
