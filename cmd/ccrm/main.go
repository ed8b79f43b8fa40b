package main

import (
	"context"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/campus-records/ccrm/internal/repository"
	"github.com/campus-records/ccrm/internal/seed"
	"github.com/campus-records/ccrm/internal/service"
	"github.com/campus-records/ccrm/internal/shell"
	"github.com/campus-records/ccrm/pkg/config"
	"github.com/campus-records/ccrm/pkg/logger"
	"github.com/campus-records/ccrm/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	dataStore, err := storage.NewLocalStorage(cfg.Data.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to open data directory", "dir", cfg.Data.Dir, "error", err)
	}
	exportStore, err := storage.NewLocalStorage(cfg.Exports.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to open export directory", "dir", cfg.Exports.Dir, "error", err)
	}

	db := repository.NewDB()
	students := repository.NewStudentRepository(db)
	courses := repository.NewCourseRepository(db)
	instructors := repository.NewInstructorRepository(db)
	enrollments := repository.NewEnrollmentRepository(db)

	seed.Run(instructors, logr)

	ctx := context.Background()
	flat := repository.NewFlatFile(db, dataStore, logr)
	stats, err := flat.Load(ctx)
	if err != nil {
		logr.Sugar().Warnw("data load incomplete, continuing with what was read", "error", err)
	}
	logr.Sugar().Infow("data loaded",
		"students", stats.Students,
		"courses", stats.Courses,
		"enrollments", stats.Enrollments,
		"skipped_rows", stats.SkippedRows,
		"dangling", stats.Dangling,
		"duplicates", stats.Duplicates,
		"missing_files", stats.MissingFiles,
	)

	validate := validator.New()
	reports := service.NewReportService(students, enrollments, logr)
	services := shell.Services{
		Students:    service.NewStudentService(students, validate, logr),
		Courses:     service.NewCourseService(courses, instructors, validate, logr),
		Enrollments: service.NewEnrollmentService(enrollments, students, cfg.Data.MaxCredits, validate, logr),
		Reports:     reports,
		Imports:     service.NewImportService(students, courses, instructors, logr),
		Exports:     service.NewExportService(students, courses, instructors, enrollments, reports, exportStore, logr),
		Backups:     service.NewBackupService(dataStore, logr),
	}

	sh := shell.New(os.Stdin, os.Stdout, cfg.AppName, services, logr)
	if err := sh.Run(ctx); err != nil {
		logr.Sugar().Errorw("shell terminated", "error", err)
	}

	if err := flat.Save(ctx); err != nil {
		logr.Sugar().Errorw("failed to save data", "error", err)
		return
	}
	logr.Sugar().Infow("data saved", "dir", cfg.Data.Dir)
}
