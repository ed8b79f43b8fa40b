package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/campus-records/ccrm/internal/models"
	"github.com/campus-records/ccrm/pkg/export"
	appErrors "github.com/campus-records/ccrm/pkg/errors"
)

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Path(filename string) string
}

type datasetRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type transcriptSource interface {
	Transcript(ctx context.Context, studentID string) (*models.Transcript, error)
}

// ExportService builds report datasets and persists rendered files under
// the export directory.
type ExportService struct {
	students    studentRepository
	courses     courseRepository
	instructors instructorRepository
	enrollments enrollmentRepository
	transcripts transcriptSource
	storage     fileStorage
	csv         datasetRenderer
	xlsx        datasetRenderer
	pdf         datasetRenderer
	logger      *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(
	students studentRepository,
	courses courseRepository,
	instructors instructorRepository,
	enrollments enrollmentRepository,
	transcripts transcriptSource,
	store fileStorage,
	logger *zap.Logger,
) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		students:    students,
		courses:     courses,
		instructors: instructors,
		enrollments: enrollments,
		transcripts: transcripts,
		storage:     store,
		csv:         export.NewCSVExporter(),
		xlsx:        export.NewXLSXExporter(),
		pdf:         export.NewPDFExporter(),
		logger:      logger,
	}
}

// StudentRosterCSV writes the full student roster, with credits and GPA,
// as CSV. It returns the stored file's path.
func (s *ExportService) StudentRosterCSV(ctx context.Context) (string, error) {
	return s.write(s.csv, s.rosterDataset(), buildFilename("students", "csv"))
}

// StudentRosterXLSX writes the full student roster as a workbook.
func (s *ExportService) StudentRosterXLSX(ctx context.Context) (string, error) {
	return s.write(s.xlsx, s.rosterDataset(), buildFilename("students", "xlsx"))
}

// CourseCatalogCSV writes the catalogue with resolved instructor names.
func (s *ExportService) CourseCatalogCSV(ctx context.Context) (string, error) {
	return s.write(s.csv, s.catalogDataset(), buildFilename("courses", "csv"))
}

// TranscriptPDF writes one student's transcript as a PDF document.
func (s *ExportService) TranscriptPDF(ctx context.Context, studentID string) (string, error) {
	transcript, err := s.transcripts.Transcript(ctx, studentID)
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(transcript.Lines))
	for _, line := range transcript.Lines {
		grade := string(line.Grade)
		if grade == "" {
			grade = "-"
		}
		title := line.CourseTitle
		if !line.Resolved {
			title = "(no longer offered)"
		}
		rows = append(rows, []string{line.CourseCode, title, strconv.Itoa(line.Credits), grade})
	}

	dataset := export.Dataset{
		Title: strings.Join([]string{
			"Student Transcript",
			fmt.Sprintf("%s (%s)", transcript.Student.FullName, transcript.Student.RegNo),
			fmt.Sprintf("Credits: %d   GPA: %.2f", transcript.CurrentCredits, transcript.GPA),
		}, "\n"),
		Headers: []string{"Course", "Title", "Credits", "Grade"},
		Rows:    rows,
	}
	name := fmt.Sprintf("transcript_%s_%s.pdf", sanitizeFilename(studentID), time.Now().UTC().Format("20060102_150405"))
	return s.write(s.pdf, dataset, name)
}

func (s *ExportService) rosterDataset() export.Dataset {
	students := s.students.List()
	rows := make([][]string, 0, len(students))
	for _, student := range students {
		credits, err := s.enrollments.CurrentCredits(student.ID)
		if err != nil {
			continue
		}
		gpa, err := s.enrollments.GPA(student.ID)
		if err != nil {
			continue
		}
		rows = append(rows, []string{
			student.ID,
			student.RegNo,
			student.FullName,
			student.Email,
			strconv.Itoa(credits),
			fmt.Sprintf("%.2f", gpa),
		})
	}
	return export.Dataset{
		Title:   "Students",
		Headers: []string{"ID", "RegNo", "FullName", "Email", "Credits", "GPA"},
		Rows:    rows,
	}
}

func (s *ExportService) catalogDataset() export.Dataset {
	courses := s.courses.List()
	rows := make([][]string, 0, len(courses))
	for _, course := range courses {
		instructorName := "N/A"
		if course.InstructorID != "" {
			if instructor, err := s.instructors.FindByID(course.InstructorID); err == nil {
				instructorName = instructor.FullName
			}
		}
		rows = append(rows, []string{
			course.Code,
			course.Title,
			strconv.Itoa(course.Credits),
			instructorName,
			course.Semester.String(),
		})
	}
	return export.Dataset{
		Title:   "Courses",
		Headers: []string{"Code", "Title", "Credits", "Instructor", "Semester"},
		Rows:    rows,
	}
}

func (s *ExportService) write(renderer datasetRenderer, dataset export.Dataset, filename string) (string, error) {
	payload, err := renderer.Render(dataset)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to render export")
	}
	stored, err := s.storage.Save(filename, payload)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrIO.Code, "failed to store export")
	}
	path := s.storage.Path(stored)
	s.logger.Info("export written", zap.String("file", path))
	return path, nil
}

func buildFilename(prefix, ext string) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	return fmt.Sprintf("%s_%s.%s", prefix, timestamp, ext)
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "__", "_")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}
