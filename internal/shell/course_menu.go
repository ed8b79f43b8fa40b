package shell

import (
	"context"
	"fmt"
	"strconv"

	"github.com/campus-records/ccrm/internal/models"
	"github.com/campus-records/ccrm/internal/service"
)

func (s *Shell) courseMenu(ctx context.Context) {
	fmt.Fprintln(s.out, "\n--- Course Management ---")
	fmt.Fprintln(s.out, "1. Add Course")
	fmt.Fprintln(s.out, "2. List Courses")
	fmt.Fprintln(s.out, "3. Search Courses")
	fmt.Fprintln(s.out, "4. Update Course")
	fmt.Fprintln(s.out, "5. Delete Course")
	fmt.Fprintln(s.out, "6. List Instructors")
	fmt.Fprintln(s.out, "7. Back to Main Menu")

	choice, ok := s.prompt("Enter your choice: ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		s.addCourse(ctx)
	case "2":
		s.listCourses(ctx)
	case "3":
		s.searchCourses(ctx)
	case "4":
		s.updateCourse(ctx)
	case "5":
		s.deleteCourse(ctx)
	case "6":
		s.listInstructors(ctx)
	case "7":
		return
	default:
		fmt.Fprintln(s.out, "Invalid choice.")
	}
}

func (s *Shell) addCourse(ctx context.Context) {
	code, ok := s.prompt("Enter Course Code: ")
	if !ok {
		return
	}
	title, ok := s.prompt("Enter Course Title: ")
	if !ok {
		return
	}
	credits, ok := s.promptInt("Enter Course Credits: ")
	if !ok {
		return
	}
	semester, ok := s.prompt("Enter Semester (SPRING, SUMMER, FALL): ")
	if !ok {
		return
	}
	_, err := s.svc.Courses.Create(ctx, service.CourseRequest{
		Code:     code,
		Title:    title,
		Credits:  credits,
		Semester: semester,
	})
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, "Course added successfully.")
}

func (s *Shell) listCourses(ctx context.Context) {
	courses := s.svc.Courses.List(ctx)
	if len(courses) == 0 {
		fmt.Fprintln(s.out, "No courses found.")
		return
	}
	for _, course := range courses {
		fmt.Fprintln(s.out, formatCourse(course))
	}
}

func (s *Shell) searchCourses(ctx context.Context) {
	query, ok := s.prompt("Enter search query (Code or Title): ")
	if !ok {
		return
	}
	results := s.svc.Courses.Search(ctx, query)
	if len(results) == 0 {
		fmt.Fprintln(s.out, "No courses found matching the query.")
		return
	}
	for _, course := range results {
		fmt.Fprintln(s.out, formatCourse(course))
	}
}

func (s *Shell) updateCourse(ctx context.Context) {
	code, ok := s.prompt("Enter Course Code to update: ")
	if !ok {
		return
	}
	title, ok := s.prompt("Enter new Title: ")
	if !ok {
		return
	}
	credits, ok := s.promptInt("Enter new Credits: ")
	if !ok {
		return
	}
	instructorID, ok := s.prompt("Enter new Instructor ID (e.g., I001): ")
	if !ok {
		return
	}
	semester, ok := s.prompt("Enter new Semester (SPRING, SUMMER, FALL): ")
	if !ok {
		return
	}
	_, err := s.svc.Courses.Update(ctx, code, service.CourseRequest{
		Title:        title,
		Credits:      credits,
		InstructorID: instructorID,
		Semester:     semester,
	})
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, "Course updated successfully.")
}

func (s *Shell) deleteCourse(ctx context.Context) {
	code, ok := s.prompt("Enter Course Code to delete: ")
	if !ok {
		return
	}
	if err := s.svc.Courses.Delete(ctx, code); err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, "Course deleted successfully.")
}

func (s *Shell) listInstructors(ctx context.Context) {
	instructors := s.svc.Courses.Instructors(ctx)
	if len(instructors) == 0 {
		fmt.Fprintln(s.out, "No instructors found.")
		return
	}
	for _, instructor := range instructors {
		s.printProfile("--- Instructor Profile ---", instructor)
	}
}

func (s *Shell) promptInt(label string) (int, bool) {
	raw, ok := s.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
		return 0, false
	}
	return n, true
}

func formatCourse(c *models.Course) string {
	line := fmt.Sprintf("Code: %s, Title: %s, Credits: %d, Semester: %s", c.Code, c.Title, c.Credits, c.Semester)
	if c.InstructorID != "" {
		line += ", Instructor: " + c.InstructorID
	}
	return line
}
