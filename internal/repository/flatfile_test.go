package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-records/ccrm/internal/models"
	"github.com/campus-records/ccrm/pkg/storage"
)

func newEngine(t *testing.T, dir string, db *DB) *FlatFile {
	t.Helper()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	return NewFlatFile(db, store, nil)
}

func seedInstructor(db *DB) {
	NewInstructorRepository(db).Put(&models.Instructor{
		Person: models.Person{ID: "I001", FullName: "Dr. Jane Doe", Email: "jdoe@ccrm.edu"},
	})
}

func TestFlatFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	source := NewDB()
	seedInstructor(source)
	students := NewStudentRepository(source)
	courses := NewCourseRepository(source)
	enrollments := NewEnrollmentRepository(source)

	require.NoError(t, students.Create(newStudent("S1", "2023001", "Kent, Clark")))
	require.NoError(t, students.Create(newStudent("S2", "2023002", "Bob")))
	require.NoError(t, courses.Create(&models.Course{
		Code: "CS101", Title: "Programming, Part I", Credits: 3,
		InstructorID: "I001", Semester: models.SemesterSpring,
	}))
	require.NoError(t, courses.Create(&models.Course{Code: "MA201", Title: "Linear Algebra", Credits: 4}))
	require.NoError(t, enrollments.Enroll("S1", "CS101", maxCredits))
	require.NoError(t, enrollments.Enroll("S1", "MA201", maxCredits))
	require.NoError(t, enrollments.Enroll("S2", "MA201", maxCredits))
	require.NoError(t, enrollments.SetGrade("S1", "CS101", models.GradeA))

	require.NoError(t, newEngine(t, dir, source).Save(ctx))

	restored := NewDB()
	seedInstructor(restored)
	stats, err := newEngine(t, dir, restored).Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Students)
	assert.Equal(t, 2, stats.Courses)
	assert.Equal(t, 3, stats.Enrollments)
	assert.Zero(t, stats.SkippedRows)
	assert.Zero(t, stats.Dangling)

	s1, err := NewStudentRepository(restored).FindByID("S1")
	require.NoError(t, err)
	assert.Equal(t, "Kent, Clark", s1.FullName)
	require.Len(t, s1.Enrollments, 2)
	assert.Equal(t, models.GradeA, s1.Enrollments[0].Grade)
	assert.False(t, s1.Enrollments[1].Graded())

	cs101, err := NewCourseRepository(restored).FindByCode("CS101")
	require.NoError(t, err)
	assert.Equal(t, "Programming, Part I", cs101.Title)
	assert.Equal(t, "I001", cs101.InstructorID)
	assert.Equal(t, models.SemesterSpring, cs101.Semester)

	ma201, err := NewCourseRepository(restored).FindByCode("MA201")
	require.NoError(t, err)
	assert.Empty(t, ma201.InstructorID)
	assert.Equal(t, models.SemesterNone, ma201.Semester)
}

func TestSaveWritesPlaceholders(t *testing.T) {
	dir := t.TempDir()

	db := NewDB()
	require.NoError(t, NewCourseRepository(db).Create(&models.Course{Code: "MA201", Title: "Linear Algebra", Credits: 4}))
	require.NoError(t, newEngine(t, dir, db).Save(context.Background()))

	raw, err := os.ReadFile(filepath.Join(dir, CoursesFile))
	require.NoError(t, err)
	assert.Equal(t, "code,title,credits,instructorId,semester\nMA201,Linear Algebra,4,N/A,N/A\n", string(raw))
}

func TestLoadMissingFilesStartsEmpty(t *testing.T) {
	db := NewDB()
	stats, err := newEngine(t, t.TempDir(), db).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.MissingFiles)
	assert.Empty(t, NewStudentRepository(db).List())
}

func TestLoadLegacyUnquotedFormat(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StudentsFile),
		[]byte("id,regNo,fullName,email\nS1,2023001,Alice,alice@campus.test\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, CoursesFile),
		[]byte("code,title,credits,instructorId,semester\nCS101,Programming,3,N/A,FALL\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnrollmentFile),
		[]byte("studentId,courseCode,grade\nS1,CS101,s\n"), 0o644))

	db := NewDB()
	stats, err := newEngine(t, dir, db).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Students)
	assert.Equal(t, 1, stats.Courses)
	assert.Equal(t, 1, stats.Enrollments)

	s1, err := NewStudentRepository(db).FindByID("S1")
	require.NoError(t, err)
	require.Len(t, s1.Enrollments, 1)
	assert.Equal(t, models.GradeS, s1.Enrollments[0].Grade)
}

func TestLoadDropsBadRows(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StudentsFile),
		[]byte("id,regNo,fullName,email\n"+
			"S1,2023001,Alice,alice@campus.test\n"+
			"S2,2023002,Bob\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, CoursesFile),
		[]byte("code,title,credits,instructorId,semester\n"+
			"CS101,Programming,3,N/A,FALL\n"+
			"MA201,Linear Algebra,four,N/A,FALL\n"+
			"PH301,Quantum Mechanics,3,N/A,WINTER\n"+
			"CH401,Organic Chemistry,3,I999,SPRING\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnrollmentFile),
		[]byte("studentId,courseCode,grade\n"+
			"S1,CS101,A\n"+
			"S1,CS101,B\n"+
			"S9,CS101,\n"+
			"S1,XX999,\n"+
			"S1,CH401,?\n"), 0o644))

	db := NewDB()
	stats, err := newEngine(t, dir, db).Load(context.Background())
	require.NoError(t, err)

	// S2 row is short, MA201 credits and PH301 semester do not parse.
	assert.Equal(t, 1, stats.Students)
	assert.Equal(t, 2, stats.Courses)
	assert.Equal(t, 3, stats.SkippedRows)

	// CH401 survives with its unknown instructor cleared.
	ch401, err := NewCourseRepository(db).FindByCode("CH401")
	require.NoError(t, err)
	assert.Empty(t, ch401.InstructorID)

	// One duplicate pair, two rows that resolve nothing, and an enrollment
	// whose grade token is ignored.
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, 2, stats.Dangling)
	assert.Equal(t, 2, stats.Enrollments)

	s1, err := NewStudentRepository(db).FindByID("S1")
	require.NoError(t, err)
	require.Len(t, s1.Enrollments, 2)
	assert.Equal(t, models.GradeA, s1.Enrollments[0].Grade)
	assert.Equal(t, "CH401", s1.Enrollments[1].CourseCode)
	assert.False(t, s1.Enrollments[1].Graded())
}
