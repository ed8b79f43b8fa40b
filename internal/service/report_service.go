package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/campus-records/ccrm/internal/models"
	appErrors "github.com/campus-records/ccrm/pkg/errors"
)

// ReportService assembles read-only views over the record base.
type ReportService struct {
	students    studentRepository
	enrollments enrollmentRepository
	logger      *zap.Logger
}

// NewReportService constructs the report service.
func NewReportService(students studentRepository, enrollments enrollmentRepository, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{students: students, enrollments: enrollments, logger: logger}
}

// GPADistribution buckets every student by the integer part of their GPA.
// Empty buckets are omitted and the rest come back in ascending order.
func (s *ReportService) GPADistribution(ctx context.Context) []models.GPABucket {
	counts := make(map[int]int)
	for _, student := range s.students.List() {
		gpa, err := s.enrollments.GPA(student.ID)
		if err != nil {
			continue
		}
		counts[int(gpa)]++
	}

	lows := make([]int, 0, len(counts))
	for low := range counts {
		lows = append(lows, low)
	}
	sort.Ints(lows)

	buckets := make([]models.GPABucket, 0, len(lows))
	for _, low := range lows {
		buckets = append(buckets, models.GPABucket{Low: low, Count: counts[low]})
	}
	return buckets
}

// Transcript joins the student's profile with enrollment details, total
// credits and GPA.
func (s *ReportService) Transcript(ctx context.Context, studentID string) (*models.Transcript, error) {
	student, err := s.students.FindByID(studentID)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	lines, err := s.enrollments.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}
	credits, err := s.enrollments.CurrentCredits(studentID)
	if err != nil {
		return nil, err
	}
	gpa, err := s.enrollments.GPA(studentID)
	if err != nil {
		return nil, err
	}
	return &models.Transcript{
		Student:        *student,
		Lines:          lines,
		CurrentCredits: credits,
		GPA:            gpa,
	}, nil
}
