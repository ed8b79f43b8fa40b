package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/campus-records/ccrm/internal/models"
	"github.com/campus-records/ccrm/pkg/export"
	"github.com/campus-records/ccrm/pkg/storage"
)

// Persisted file names under the data directory.
const (
	StudentsFile   = "students.csv"
	CoursesFile    = "courses.csv"
	EnrollmentFile = "enrollment.csv"
)

var (
	studentsHeader   = []string{"id", "regNo", "fullName", "email"}
	coursesHeader    = []string{"code", "title", "credits", "instructorId", "semester"}
	enrollmentHeader = []string{"studentId", "courseCode", "grade"}
)

// LoadStats reports what a Load pass accepted and what it had to drop.
type LoadStats struct {
	Students     int
	Courses      int
	Enrollments  int
	SkippedRows  int
	Dangling     int
	Duplicates   int
	MissingFiles int
}

// FlatFile moves the store's contents to and from the CSV files in the
// data directory. Loading is lenient: rows it cannot use are dropped,
// warn-logged and counted, never fatal.
type FlatFile struct {
	db     *DB
	store  *storage.LocalStorage
	csv    *export.CSVExporter
	logger *zap.Logger
}

// NewFlatFile builds the persistence engine over the shared store.
func NewFlatFile(db *DB, store *storage.LocalStorage, logger *zap.Logger) *FlatFile {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FlatFile{
		db:     db,
		store:  store,
		csv:    export.NewCSVExporter(),
		logger: logger,
	}
}

// Load reads students, then courses, then enrollments, in that order so
// references resolve against already-loaded tables. Instructors are
// expected to be seeded beforehand. Per-file I/O failures are joined into
// the returned error; whatever parsed before the failure stays loaded.
func (f *FlatFile) Load(ctx context.Context) (*LoadStats, error) {
	stats := &LoadStats{}

	errs := []error{}
	if err := f.loadStudents(stats); err != nil {
		errs = append(errs, err)
	}
	if err := f.loadCourses(stats); err != nil {
		errs = append(errs, err)
	}
	if err := f.loadEnrollments(stats); err != nil {
		errs = append(errs, err)
	}
	return stats, errors.Join(errs...)
}

func (f *FlatFile) loadStudents(stats *LoadStats) error {
	rows, err := f.readFile(StudentsFile, stats)
	if rows == nil || err != nil {
		return err
	}

	f.db.mu.Lock()
	defer f.db.mu.Unlock()

	for _, rec := range rows {
		if len(rec) != len(studentsHeader) {
			stats.SkippedRows++
			f.logger.Warn("skipping malformed student row", zap.Strings("row", rec))
			continue
		}
		f.db.putStudent(&models.Student{
			Person: models.Person{ID: rec[0], FullName: rec[2], Email: rec[3]},
			RegNo:  rec[1],
		})
		stats.Students++
	}
	return nil
}

func (f *FlatFile) loadCourses(stats *LoadStats) error {
	rows, err := f.readFile(CoursesFile, stats)
	if rows == nil || err != nil {
		return err
	}

	f.db.mu.Lock()
	defer f.db.mu.Unlock()

	for _, rec := range rows {
		if len(rec) != len(coursesHeader) {
			stats.SkippedRows++
			f.logger.Warn("skipping malformed course row", zap.Strings("row", rec))
			continue
		}
		credits, convErr := strconv.Atoi(rec[2])
		if convErr != nil || credits <= 0 {
			stats.SkippedRows++
			f.logger.Warn("skipping course row with bad credits", zap.String("code", rec[0]), zap.String("credits", rec[2]))
			continue
		}
		semester, ok := models.ParseSemester(rec[4])
		if !ok {
			stats.SkippedRows++
			f.logger.Warn("skipping course row with unknown semester", zap.String("code", rec[0]), zap.String("semester", rec[4]))
			continue
		}

		instructorID := rec[3]
		if instructorID == "N/A" {
			instructorID = ""
		}
		if instructorID != "" {
			if _, found := f.db.instructors[instructorID]; !found {
				f.logger.Warn("clearing unknown instructor reference", zap.String("code", rec[0]), zap.String("instructor_id", instructorID))
				instructorID = ""
			}
		}

		f.db.putCourse(&models.Course{
			Code:         rec[0],
			Title:        rec[1],
			Credits:      credits,
			InstructorID: instructorID,
			Semester:     semester,
		})
		stats.Courses++
	}
	return nil
}

func (f *FlatFile) loadEnrollments(stats *LoadStats) error {
	rows, err := f.readFile(EnrollmentFile, stats)
	if rows == nil || err != nil {
		return err
	}

	f.db.mu.Lock()
	defer f.db.mu.Unlock()

	for _, rec := range rows {
		if len(rec) != len(enrollmentHeader) {
			stats.SkippedRows++
			f.logger.Warn("skipping malformed enrollment row", zap.Strings("row", rec))
			continue
		}
		studentID, courseCode, gradeToken := rec[0], rec[1], rec[2]

		student, ok := f.db.students[studentID]
		if !ok {
			stats.Dangling++
			f.logger.Warn("dropping enrollment for unknown student", zap.String("student_id", studentID), zap.String("course", courseCode))
			continue
		}
		if _, ok := f.db.courses[courseCode]; !ok {
			stats.Dangling++
			f.logger.Warn("dropping enrollment for unknown course", zap.String("student_id", studentID), zap.String("course", courseCode))
			continue
		}

		duplicate := false
		for _, e := range student.Enrollments {
			if e.CourseCode == courseCode {
				duplicate = true
				break
			}
		}
		if duplicate {
			stats.Duplicates++
			f.logger.Warn("dropping duplicate enrollment row", zap.String("student_id", studentID), zap.String("course", courseCode))
			continue
		}

		grade := models.GradeNone
		if gradeToken != "" {
			parsed, valid := models.ParseGrade(gradeToken)
			if !valid {
				f.logger.Warn("ignoring unrecognized grade token", zap.String("student_id", studentID), zap.String("course", courseCode), zap.String("grade", gradeToken))
			}
			grade = parsed
		}

		student.Enrollments = append(student.Enrollments, &models.Enrollment{
			CourseCode: courseCode,
			Grade:      grade,
		})
		stats.Enrollments++
	}
	return nil
}

// readFile parses one data file into trimmed records, the header line
// dropped. A missing file yields (nil, nil) and bumps MissingFiles.
func (f *FlatFile) readFile(filename string, stats *LoadStats) ([][]string, error) {
	if !f.store.Exists(filename) {
		stats.MissingFiles++
		f.logger.Info("data file not found, starting empty", zap.String("file", filename))
		return nil, nil
	}
	file, err := f.store.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}
	defer file.Close() //nolint:errcheck

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records := make([][]string, 0)
	header := true
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			stats.SkippedRows++
			f.logger.Warn("skipping unreadable line", zap.String("file", filename), zap.Error(err))
			continue
		}
		if header {
			header = false
			continue
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		records = append(records, rec)
	}
	return records, nil
}

// Save writes students, courses and enrollments back out. Each file is
// rendered and written independently; failures are joined, not fatal to
// the other files.
func (f *FlatFile) Save(ctx context.Context) error {
	studentRows, courseRows, enrollmentRows := f.snapshot()

	errs := []error{}
	if err := f.writeFile(StudentsFile, studentsHeader, studentRows); err != nil {
		errs = append(errs, err)
	} else {
		f.logger.Info("students saved", zap.Int("count", len(studentRows)))
	}
	if err := f.writeFile(CoursesFile, coursesHeader, courseRows); err != nil {
		errs = append(errs, err)
	} else {
		f.logger.Info("courses saved", zap.Int("count", len(courseRows)))
	}
	if err := f.writeFile(EnrollmentFile, enrollmentHeader, enrollmentRows); err != nil {
		errs = append(errs, err)
	} else {
		f.logger.Info("enrollments saved", zap.Int("count", len(enrollmentRows)))
	}
	return errors.Join(errs...)
}

func (f *FlatFile) snapshot() (students, courses, enrollments [][]string) {
	f.db.mu.RLock()
	defer f.db.mu.RUnlock()

	for _, id := range f.db.studentOrder {
		s := f.db.students[id]
		students = append(students, []string{s.ID, s.RegNo, s.FullName, s.Email})

		for _, e := range s.Enrollments {
			enrollments = append(enrollments, []string{s.ID, e.CourseCode, string(e.Grade)})
		}
	}
	for _, code := range f.db.courseOrder {
		c := f.db.courses[code]
		instructorID := c.InstructorID
		if instructorID == "" {
			instructorID = "N/A"
		}
		courses = append(courses, []string{c.Code, c.Title, strconv.Itoa(c.Credits), instructorID, c.Semester.String()})
	}
	return students, courses, enrollments
}

func (f *FlatFile) writeFile(filename string, header []string, rows [][]string) error {
	data, err := f.csv.Render(export.Dataset{Headers: header, Rows: rows})
	if err != nil {
		return fmt.Errorf("render %s: %w", filename, err)
	}
	if _, err := f.store.Save(filename, data); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
