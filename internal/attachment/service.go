package attachment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flowhub/flowhub/internal/process/model"
)

// Service coordinates attachment uploads: content goes through the storage
// driver, metadata into the database. The two writes are not transactional;
// a failed metadata write cleans up the stored object instead.
type Service struct {
	db     *gorm.DB
	driver StorageDriver
}

func NewService(db *gorm.DB, driver StorageDriver) *Service {
	return &Service{db: db, driver: driver}
}

// Upload stores the file content and records an attachment against the task.
func (s *Service) Upload(ctx context.Context, taskID uuid.UUID, filename string, reader io.Reader, size int64, mime string) (*Attachment, error) {
	if taskID == uuid.Nil {
		return nil, fmt.Errorf("task ID cannot be nil")
	}
	if mime == "" {
		mime = "application/octet-stream"
	}

	key := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(filename))
	if err := s.driver.Save(ctx, key, reader, mime); err != nil {
		return nil, fmt.Errorf("storage driver failed: %w", err)
	}

	url, err := s.driver.GenerateURL(ctx, key, 0)
	if err != nil {
		s.cleanup(ctx, key)
		return nil, fmt.Errorf("failed to generate URL: %w", err)
	}

	att := &Attachment{
		TaskID:   taskID,
		Name:     filename,
		Key:      key,
		URL:      url,
		Size:     size,
		MimeType: mime,
	}
	if err := s.db.WithContext(ctx).Create(att).Error; err != nil {
		s.cleanup(ctx, key)
		return nil, fmt.Errorf("failed to record attachment: %w", err)
	}

	slog.InfoContext(ctx, "attachment uploaded", "attachment_id", att.ID, "task_id", taskID, "key", key)
	return att, nil
}

// ListByTask returns the attachments recorded against one task.
func (s *Service) ListByTask(ctx context.Context, taskID uuid.UUID) ([]Attachment, error) {
	if taskID == uuid.Nil {
		return nil, fmt.Errorf("task ID cannot be nil")
	}

	var attachments []Attachment
	if err := s.db.WithContext(ctx).Where("task_id = ?", taskID).Order("created_at ASC").Find(&attachments).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return attachments, nil
}

// Open streams the content of an attachment by its storage key.
func (s *Service) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if key == "" {
		return nil, "", fmt.Errorf("key cannot be empty")
	}
	return s.driver.Get(ctx, key)
}

// Delete removes an attachment's metadata and its stored content.
func (s *Service) Delete(ctx context.Context, attachmentID uuid.UUID) error {
	if attachmentID == uuid.Nil {
		return fmt.Errorf("attachment ID cannot be nil")
	}

	var att Attachment
	result := s.db.WithContext(ctx).First(&att, "id = ?", attachmentID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("attachment %s: %w", attachmentID, model.ErrNotFound)
		}
		return fmt.Errorf("failed to retrieve attachment %s: %w", attachmentID, result.Error)
	}

	if err := s.db.WithContext(ctx).Delete(&att).Error; err != nil {
		return fmt.Errorf("failed to delete attachment %s: %w", attachmentID, err)
	}
	if err := s.driver.Delete(ctx, att.Key); err != nil {
		// Metadata is gone; an orphaned object is log-worthy but not fatal.
		slog.WarnContext(ctx, "failed to delete attachment content", "key", att.Key, "error", err)
	}
	return nil
}

func (s *Service) cleanup(ctx context.Context, key string) {
	if err := s.driver.Delete(ctx, key); err != nil {
		slog.WarnContext(ctx, "failed to cleanup orphaned file", "key", key, "error", err)
	}
}
