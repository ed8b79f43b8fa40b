package shell

import (
	"context"
	"fmt"
)

func (s *Shell) dataMenu(ctx context.Context) {
	fmt.Fprintln(s.out, "\n--- Import/Export Data ---")
	fmt.Fprintln(s.out, "1. Import Students (CSV)")
	fmt.Fprintln(s.out, "2. Import Courses (CSV)")
	fmt.Fprintln(s.out, "3. Export Student Roster (CSV)")
	fmt.Fprintln(s.out, "4. Export Student Roster (XLSX)")
	fmt.Fprintln(s.out, "5. Export Course Catalog (CSV)")
	fmt.Fprintln(s.out, "6. Export Transcript (PDF)")
	fmt.Fprintln(s.out, "7. Back to Main Menu")

	choice, ok := s.prompt("Enter your choice: ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		s.importStudents(ctx)
	case "2":
		s.importCourses(ctx)
	case "3":
		s.export(func() (string, error) { return s.svc.Exports.StudentRosterCSV(ctx) })
	case "4":
		s.export(func() (string, error) { return s.svc.Exports.StudentRosterXLSX(ctx) })
	case "5":
		s.export(func() (string, error) { return s.svc.Exports.CourseCatalogCSV(ctx) })
	case "6":
		s.exportTranscript(ctx)
	case "7":
		return
	default:
		fmt.Fprintln(s.out, "Invalid choice.")
	}
}

func (s *Shell) importStudents(ctx context.Context) {
	path, ok := s.prompt("Enter file path: ")
	if !ok {
		return
	}
	stats, err := s.svc.Imports.Students(ctx, path)
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintf(s.out, "Imported %d students (%d lines skipped).\n", stats.Imported, stats.Skipped)
}

func (s *Shell) importCourses(ctx context.Context) {
	path, ok := s.prompt("Enter file path: ")
	if !ok {
		return
	}
	stats, err := s.svc.Imports.Courses(ctx, path)
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintf(s.out, "Imported %d courses (%d lines skipped).\n", stats.Imported, stats.Skipped)
}

func (s *Shell) export(run func() (string, error)) {
	path, err := run()
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintf(s.out, "Export written to: %s\n", path)
}

func (s *Shell) exportTranscript(ctx context.Context) {
	studentID, ok := s.prompt("Enter Student ID: ")
	if !ok {
		return
	}
	s.export(func() (string, error) { return s.svc.Exports.TranscriptPDF(ctx, studentID) })
}

func (s *Shell) backup(ctx context.Context) {
	result, err := s.svc.Backups.Create(ctx)
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintf(s.out, "Backup created at: %s\n", result.Dir)
}
