package service

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campus-records/ccrm/internal/models"
	"github.com/campus-records/ccrm/internal/repository"
	appErrors "github.com/campus-records/ccrm/pkg/errors"
)

// ImportStats reports how many lines an import accepted and dropped.
type ImportStats struct {
	Imported int
	Skipped  int
}

// ImportService loads external record files. The import formats differ
// from the persisted ones: student identifiers are assigned on the way
// in, and course lines may carry a department column that is dropped.
type ImportService struct {
	students    studentRepository
	courses     courseRepository
	instructors instructorRepository
	logger      *zap.Logger
}

// NewImportService constructs the import service.
func NewImportService(students studentRepository, courses courseRepository, instructors instructorRepository, logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{students: students, courses: courses, instructors: instructors, logger: logger}
}

// Students imports `regNo,fullName,email` lines from path. Lines with the
// wrong shape, a blank regNo or name, or an already-used regNo are
// skipped and counted.
func (s *ImportService) Students(ctx context.Context, path string) (*ImportStats, error) {
	records, stats, err := readImportFile(path)
	if err != nil {
		return nil, err
	}

	for i, rec := range records {
		if i == 0 && isHeader(rec, "regNo", "fullName", "email") {
			continue
		}
		if len(rec) != 3 {
			stats.Skipped++
			s.logger.Warn("skipping malformed student line", zap.Strings("line", rec))
			continue
		}
		regNo, fullName, email := rec[0], rec[1], rec[2]
		if regNo == "" || fullName == "" {
			stats.Skipped++
			s.logger.Warn("skipping student line with blank fields", zap.Strings("line", rec))
			continue
		}
		if s.students.ExistsByRegNo(regNo, "") {
			stats.Skipped++
			s.logger.Warn("skipping student line with duplicate registration number", zap.String("reg_no", regNo))
			continue
		}
		student := &models.Student{
			Person: models.Person{ID: uuid.NewString(), FullName: fullName, Email: email},
			RegNo:  regNo,
		}
		if err := s.students.Create(student); err != nil {
			stats.Skipped++
			s.logger.Warn("skipping student line", zap.String("reg_no", regNo), zap.Error(err))
			continue
		}
		stats.Imported++
	}

	s.logger.Info("students imported", zap.Int("imported", stats.Imported), zap.Int("skipped", stats.Skipped))
	return stats, nil
}

// Courses imports `code,title,credits,instructor,semester[,department]`
// lines from path. Unknown instructors are cleared, bad credits or
// semesters skip the line, duplicate codes are skipped.
func (s *ImportService) Courses(ctx context.Context, path string) (*ImportStats, error) {
	records, stats, err := readImportFile(path)
	if err != nil {
		return nil, err
	}

	for i, rec := range records {
		if i == 0 && isHeader(rec, "code", "title", "credits") {
			continue
		}
		if len(rec) != 5 && len(rec) != 6 {
			stats.Skipped++
			s.logger.Warn("skipping malformed course line", zap.Strings("line", rec))
			continue
		}
		credits, convErr := strconv.Atoi(rec[2])
		if convErr != nil || credits <= 0 {
			stats.Skipped++
			s.logger.Warn("skipping course line with bad credits", zap.String("code", rec[0]), zap.String("credits", rec[2]))
			continue
		}
		semester, ok := models.ParseSemester(rec[4])
		if !ok {
			stats.Skipped++
			s.logger.Warn("skipping course line with unknown semester", zap.String("code", rec[0]), zap.String("semester", rec[4]))
			continue
		}

		instructorID := rec[3]
		if instructorID == "N/A" {
			instructorID = ""
		}
		if instructorID != "" {
			if _, err := s.instructors.FindByID(instructorID); err != nil {
				s.logger.Warn("clearing unknown instructor reference", zap.String("code", rec[0]), zap.String("instructor_id", instructorID))
				instructorID = ""
			}
		}

		course := &models.Course{
			Code:         rec[0],
			Title:        rec[1],
			Credits:      credits,
			InstructorID: instructorID,
			Semester:     semester,
		}
		if err := s.courses.Create(course); err != nil {
			stats.Skipped++
			if errors.Is(err, repository.ErrDuplicate) {
				s.logger.Warn("skipping course line with duplicate code", zap.String("code", course.Code))
			} else {
				s.logger.Warn("skipping course line", zap.String("code", course.Code), zap.Error(err))
			}
			continue
		}
		stats.Imported++
	}

	s.logger.Info("courses imported", zap.Int("imported", stats.Imported), zap.Int("skipped", stats.Skipped))
	return stats, nil
}

func readImportFile(path string) ([][]string, *ImportStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrIO.Code, "cannot open import file")
	}
	defer file.Close() //nolint:errcheck

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	stats := &ImportStats{}
	records := make([][]string, 0)
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			stats.Skipped++
			continue
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		records = append(records, rec)
	}
	return records, stats, nil
}

func isHeader(rec []string, names ...string) bool {
	if len(rec) < len(names) {
		return false
	}
	for i, name := range names {
		if !strings.EqualFold(rec[i], name) {
			return false
		}
	}
	return true
}
