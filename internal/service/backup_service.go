package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campus-records/ccrm/internal/repository"
	appErrors "github.com/campus-records/ccrm/pkg/errors"
)

type backupStorage interface {
	Exists(filename string) bool
	CopyTo(filename, destDir string) (string, error)
	EnsureDir(dir string) error
	Path(filename string) string
}

// BackupResult names the created directory and the files copied into it.
type BackupResult struct {
	Dir   string
	Files []string
}

// BackupService snapshots the persisted data files.
type BackupService struct {
	storage backupStorage
	logger  *zap.Logger
}

// NewBackupService constructs the backup service.
func NewBackupService(store backupStorage, logger *zap.Logger) *BackupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackupService{storage: store, logger: logger}
}

// Create copies the persisted files into a fresh timestamped directory
// alongside them. Missing source files are skipped, not errors.
func (s *BackupService) Create(ctx context.Context) (*BackupResult, error) {
	dir := "backup_" + time.Now().Format("20060102_150405")
	if err := s.storage.EnsureDir(dir); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrIO.Code, "failed to create backup directory")
	}

	result := &BackupResult{Dir: s.storage.Path(dir)}
	for _, filename := range []string{repository.StudentsFile, repository.CoursesFile, repository.EnrollmentFile} {
		if !s.storage.Exists(filename) {
			continue
		}
		copied, err := s.storage.CopyTo(filename, dir)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrIO.Code, "failed to back up "+filename)
		}
		result.Files = append(result.Files, copied)
	}

	s.logger.Info("backup created", zap.String("dir", result.Dir), zap.Int("files", len(result.Files)))
	return result, nil
}
