package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-records/ccrm/internal/models"
	"github.com/campus-records/ccrm/internal/repository"
	appErrors "github.com/campus-records/ccrm/pkg/errors"
)

type importFixture struct {
	svc      *ImportService
	students *repository.StudentRepository
	courses  *repository.CourseRepository
	dir      string
}

func newImportServiceForTest(t *testing.T) importFixture {
	t.Helper()
	db := repository.NewDB()
	students := repository.NewStudentRepository(db)
	courses := repository.NewCourseRepository(db)
	instructors := repository.NewInstructorRepository(db)
	instructors.Put(&models.Instructor{Person: models.Person{ID: "I001", FullName: "Dr. Jane Doe", Email: "jdoe@ccrm.edu"}})

	return importFixture{
		svc:      NewImportService(students, courses, instructors, zap.NewNop()),
		students: students,
		courses:  courses,
		dir:      t.TempDir(),
	}
}

func (f importFixture) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportServiceStudents(t *testing.T) {
	f := newImportServiceForTest(t)
	path := f.writeFile(t, "students.csv", ""+
		"regNo,fullName,email\n"+
		"R1,Alice Smith,alice@x.edu\n"+
		"R2,Bob Jones,bob@x.edu\n"+
		"broken line\n"+
		",No RegNo,none@x.edu\n"+
		"R1,Duplicate,dup@x.edu\n"+
		"R3,Cara Lane,cara@x.edu\n")

	stats, err := f.svc.Students(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Imported)
	assert.Equal(t, 3, stats.Skipped)

	list := f.students.List()
	require.Len(t, list, 3)
	assert.Equal(t, "R1", list[0].RegNo)
	assert.Equal(t, "R3", list[2].RegNo)
	for _, s := range list {
		assert.NotEmpty(t, s.ID)
	}
}

func TestImportServiceStudentsWithoutHeader(t *testing.T) {
	f := newImportServiceForTest(t)
	path := f.writeFile(t, "students.csv", "R1,Alice Smith,alice@x.edu\n")

	stats, err := f.svc.Students(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)
	assert.Equal(t, 0, stats.Skipped)
}

func TestImportServiceStudentsMissingFile(t *testing.T) {
	f := newImportServiceForTest(t)

	_, err := f.svc.Students(context.Background(), filepath.Join(f.dir, "absent.csv"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrIO.Code, appErrors.FromError(err).Code)
}

func TestImportServiceCourses(t *testing.T) {
	f := newImportServiceForTest(t)
	path := f.writeFile(t, "courses.csv", ""+
		"code,title,credits,instructor,semester\n"+
		"CS101,Intro to Programming,3,I001,FALL\n"+
		"MA201,Calculus,4,I999,SPRING,Mathematics\n"+
		"PH301,Physics,zero,I001,FALL\n"+
		"CH401,Chemistry,3,I001,WINTER\n"+
		"CS101,Repeat,3,N/A,SUMMER\n"+
		"EE501,Circuits,3,N/A,N/A\n")

	stats, err := f.svc.Courses(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Imported)
	assert.Equal(t, 3, stats.Skipped)

	cs101, err := f.courses.FindByCode("CS101")
	require.NoError(t, err)
	assert.Equal(t, "Intro to Programming", cs101.Title)
	assert.Equal(t, "I001", cs101.InstructorID)
	assert.Equal(t, models.SemesterFall, cs101.Semester)

	ma201, err := f.courses.FindByCode("MA201")
	require.NoError(t, err)
	assert.Empty(t, ma201.InstructorID)
	assert.Equal(t, models.SemesterSpring, ma201.Semester)

	ee501, err := f.courses.FindByCode("EE501")
	require.NoError(t, err)
	assert.Equal(t, models.SemesterNone, ee501.Semester)
}

func TestImportServiceCoursesQuotedTitle(t *testing.T) {
	f := newImportServiceForTest(t)
	path := f.writeFile(t, "courses.csv", "CS102,\"Algorithms, Part I\",4,I001,SPRING\n")

	stats, err := f.svc.Courses(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)

	course, err := f.courses.FindByCode("CS102")
	require.NoError(t, err)
	assert.Equal(t, "Algorithms, Part I", course.Title)
}
