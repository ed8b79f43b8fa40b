package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/campus-records/ccrm/internal/models"
	"github.com/campus-records/ccrm/internal/service"
	appErrors "github.com/campus-records/ccrm/pkg/errors"
)

// Services bundles everything the menus reach.
type Services struct {
	Students    *service.StudentService
	Courses     *service.CourseService
	Enrollments *service.EnrollmentService
	Reports     *service.ReportService
	Imports     *service.ImportService
	Exports     *service.ExportService
	Backups     *service.BackupService
}

// Shell drives the interactive menu loop. Reads come from the injected
// reader and writes go to the injected writer, so scripted sessions can
// exercise it end to end.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	appName string
	svc     Services
	logger  *zap.Logger
	eof     bool
}

// New constructs a Shell.
func New(in io.Reader, out io.Writer, appName string, svc Services, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		in:      bufio.NewScanner(in),
		out:     out,
		appName: appName,
		svc:     svc,
		logger:  logger,
	}
}

// Run loops over the main menu until Exit is chosen or input runs out.
// Exhausted input counts as a clean exit so piped sessions terminate.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "Welcome to %s\n", s.appName)
	for {
		fmt.Fprintln(s.out, "\n--- Main Menu ---")
		fmt.Fprintln(s.out, "1. Manage Students")
		fmt.Fprintln(s.out, "2. Manage Courses")
		fmt.Fprintln(s.out, "3. Manage Enrollment & Grades")
		fmt.Fprintln(s.out, "4. Import/Export Data")
		fmt.Fprintln(s.out, "5. Backup Data")
		fmt.Fprintln(s.out, "6. Reports")
		fmt.Fprintln(s.out, "7. Exit")

		choice, ok := s.prompt("Enter your choice: ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			s.studentMenu(ctx)
		case "2":
			s.courseMenu(ctx)
		case "3":
			s.enrollmentMenu(ctx)
		case "4":
			s.dataMenu(ctx)
		case "5":
			s.backup(ctx)
		case "6":
			s.reportMenu(ctx)
		case "7":
			fmt.Fprintf(s.out, "Exiting %s. Goodbye!\n", s.appName)
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter a number between 1 and 7.")
		}
		if s.eof {
			return nil
		}
	}
}

func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		s.eof = true
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) printError(err error) {
	fmt.Fprintf(s.out, "Error: %s\n", appErrors.FromError(err).Message)
}

func (s *Shell) printProfile(header string, record models.Displayable) {
	fmt.Fprintln(s.out, header)
	for _, line := range record.Profile() {
		fmt.Fprintln(s.out, line)
	}
}
