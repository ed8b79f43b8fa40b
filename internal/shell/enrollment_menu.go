package shell

import (
	"context"
	"fmt"

	"github.com/campus-records/ccrm/internal/service"
)

func (s *Shell) enrollmentMenu(ctx context.Context) {
	fmt.Fprintln(s.out, "\n--- Enrollment & Grades ---")
	fmt.Fprintln(s.out, "1. Enroll Student")
	fmt.Fprintln(s.out, "2. Unenroll Student")
	fmt.Fprintln(s.out, "3. Record Grade")
	fmt.Fprintln(s.out, "4. Print Transcript")
	fmt.Fprintln(s.out, "5. Back to Main Menu")

	choice, ok := s.prompt("Enter your choice: ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		s.enrollStudent(ctx)
	case "2":
		s.unenrollStudent(ctx)
	case "3":
		s.recordGrade(ctx)
	case "4":
		s.showTranscript(ctx)
	case "5":
		return
	default:
		fmt.Fprintln(s.out, "Invalid choice.")
	}
}

func (s *Shell) enrollStudent(ctx context.Context) {
	studentID, ok := s.prompt("Enter Student ID: ")
	if !ok {
		return
	}
	courseCode, ok := s.prompt("Enter Course Code: ")
	if !ok {
		return
	}
	err := s.svc.Enrollments.Enroll(ctx, service.EnrollmentRequest{StudentID: studentID, CourseCode: courseCode})
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, "Student enrolled successfully.")
}

func (s *Shell) unenrollStudent(ctx context.Context) {
	studentID, ok := s.prompt("Enter Student ID: ")
	if !ok {
		return
	}
	courseCode, ok := s.prompt("Enter Course Code: ")
	if !ok {
		return
	}
	err := s.svc.Enrollments.Unenroll(ctx, service.EnrollmentRequest{StudentID: studentID, CourseCode: courseCode})
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, "Student unenrolled successfully.")
}

func (s *Shell) recordGrade(ctx context.Context) {
	studentID, ok := s.prompt("Enter Student ID: ")
	if !ok {
		return
	}
	courseCode, ok := s.prompt("Enter Course Code: ")
	if !ok {
		return
	}
	grade, ok := s.prompt("Enter Grade (S, A, B, C, D, E, F): ")
	if !ok {
		return
	}
	err := s.svc.Enrollments.RecordGrade(ctx, service.RecordGradeRequest{
		StudentID:  studentID,
		CourseCode: courseCode,
		Grade:      grade,
	})
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, "Grade recorded successfully.")
}

func (s *Shell) showTranscript(ctx context.Context) {
	studentID, ok := s.prompt("Enter Student ID: ")
	if !ok {
		return
	}
	transcript, err := s.svc.Reports.Transcript(ctx, studentID)
	if err != nil {
		s.printError(err)
		return
	}
	s.printTranscript(transcript)
}
