package shell

import (
	"context"
	"fmt"

	"github.com/campus-records/ccrm/internal/models"
	"github.com/campus-records/ccrm/internal/service"
)

func (s *Shell) studentMenu(ctx context.Context) {
	fmt.Fprintln(s.out, "\n--- Student Management ---")
	fmt.Fprintln(s.out, "1. Add Student")
	fmt.Fprintln(s.out, "2. List Students")
	fmt.Fprintln(s.out, "3. Search Students")
	fmt.Fprintln(s.out, "4. Update Student")
	fmt.Fprintln(s.out, "5. Delete Student")
	fmt.Fprintln(s.out, "6. Back to Main Menu")

	choice, ok := s.prompt("Enter your choice: ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		s.addStudent(ctx)
	case "2":
		s.listStudents(ctx)
	case "3":
		s.searchStudents(ctx)
	case "4":
		s.updateStudent(ctx)
	case "5":
		s.deleteStudent(ctx)
	case "6":
		return
	default:
		fmt.Fprintln(s.out, "Invalid choice.")
	}
}

func (s *Shell) addStudent(ctx context.Context) {
	id, ok := s.prompt("Enter Student ID: ")
	if !ok {
		return
	}
	regNo, ok := s.prompt("Enter Registration Number: ")
	if !ok {
		return
	}
	fullName, ok := s.prompt("Enter Full Name: ")
	if !ok {
		return
	}
	email, ok := s.prompt("Enter Email: ")
	if !ok {
		return
	}
	_, err := s.svc.Students.Create(ctx, service.CreateStudentRequest{
		ID:       id,
		RegNo:    regNo,
		FullName: fullName,
		Email:    email,
	})
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, "Student added successfully.")
}

func (s *Shell) listStudents(ctx context.Context) {
	students := s.svc.Students.List(ctx)
	if len(students) == 0 {
		fmt.Fprintln(s.out, "No students found.")
		return
	}
	for _, student := range students {
		fmt.Fprintf(s.out, "ID: %s, Name: %s, RegNo: %s\n", student.ID, student.FullName, student.RegNo)
	}
}

func (s *Shell) searchStudents(ctx context.Context) {
	query, ok := s.prompt("Enter search query (ID, RegNo, or Name): ")
	if !ok {
		return
	}
	results := s.svc.Students.Search(ctx, query)
	if len(results) == 0 {
		fmt.Fprintln(s.out, "No students found matching the query.")
		return
	}
	for _, student := range results {
		transcript, err := s.svc.Reports.Transcript(ctx, student.ID)
		if err != nil {
			s.printError(err)
			continue
		}
		s.printTranscript(transcript)
	}
}

func (s *Shell) updateStudent(ctx context.Context) {
	id, ok := s.prompt("Enter Student ID to update: ")
	if !ok {
		return
	}
	fullName, ok := s.prompt("Enter new Full Name: ")
	if !ok {
		return
	}
	email, ok := s.prompt("Enter new Email: ")
	if !ok {
		return
	}
	_, err := s.svc.Students.Update(ctx, id, service.UpdateStudentRequest{FullName: fullName, Email: email})
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, "Student updated successfully.")
}

func (s *Shell) deleteStudent(ctx context.Context) {
	id, ok := s.prompt("Enter Student ID to delete: ")
	if !ok {
		return
	}
	if err := s.svc.Students.Delete(ctx, id); err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, "Student deleted successfully.")
}

func (s *Shell) printTranscript(t *models.Transcript) {
	s.printProfile("--- Student Profile ---", &t.Student)
	fmt.Fprintf(s.out, "Current Credits: %d\n", t.CurrentCredits)
	fmt.Fprintf(s.out, "GPA: %.2f\n", t.GPA)
	fmt.Fprintln(s.out, "Enrolled Courses:")
	if len(t.Lines) == 0 {
		fmt.Fprintln(s.out, "  No courses enrolled.")
		return
	}
	for _, line := range t.Lines {
		fmt.Fprintf(s.out, "  %s\n", formatEnrollment(line))
	}
}

func formatEnrollment(d models.EnrollmentDetail) string {
	title := d.CourseTitle
	if !d.Resolved {
		title = "(no longer offered)"
	}
	grade := string(d.Grade)
	if grade == "" {
		grade = "N/A"
	}
	return fmt.Sprintf("%s: %s, %d credits, Grade: %s", d.CourseCode, title, d.Credits, grade)
}
