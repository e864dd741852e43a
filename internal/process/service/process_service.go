package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flowhub/flowhub/internal/process/model"
	"github.com/flowhub/flowhub/utils"
)

// ProcessService owns the CRUD surface of process definitions. Stage
// sequences are normalized (sorted by ascending order) on every write so
// readers can rely on positional indexing.
type ProcessService struct {
	db *gorm.DB
}

func NewProcessService(db *gorm.DB) *ProcessService {
	return &ProcessService{db: db}
}

// CreateProcess stores a new process definition.
func (s *ProcessService) CreateProcess(ctx context.Context, req *model.CreateProcessDTO) (*model.Process, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: create request cannot be nil", model.ErrInvalid)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: process name cannot be empty", model.ErrInvalid)
	}
	if err := validateStages(req.Stages); err != nil {
		return nil, err
	}

	process := &model.Process{
		Name:   req.Name,
		Owner:  req.Owner,
		Tags:   req.Tags,
		Stages: req.Stages,
	}
	process.Stages.Sort()

	if err := s.db.WithContext(ctx).Create(process).Error; err != nil {
		return nil, fmt.Errorf("failed to create process: %w", err)
	}
	return process, nil
}

// GetProcessByID retrieves a process, mapping a missing row to ErrNotFound.
func (s *ProcessService) GetProcessByID(ctx context.Context, processID uuid.UUID) (*model.Process, error) {
	if processID == uuid.Nil {
		return nil, fmt.Errorf("process ID cannot be nil")
	}

	var process model.Process
	result := s.db.WithContext(ctx).First(&process, "id = ?", processID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("process %s: %w", processID, model.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve process %s: %w", processID, result.Error)
	}
	return &process, nil
}

// ListProcesses returns processes matching the filter, newest first.
func (s *ProcessService) ListProcesses(ctx context.Context, filter model.ProcessFilter) ([]model.Process, error) {
	offset, limit := utils.GetPaginationParams(filter.Offset, filter.Limit)

	query := s.db.WithContext(ctx).Model(&model.Process{})
	if filter.Owner != nil && *filter.Owner != "" {
		query = query.Where("owner = ?", *filter.Owner)
	}
	if filter.Tag != nil && *filter.Tag != "" {
		query = query.Where("tags @> ?", fmt.Sprintf(`["%s"]`, *filter.Tag))
	}

	var processes []model.Process
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&processes).Error; err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	return processes, nil
}

// UpdateProcess replaces the editable fields of a process definition.
// Running instances are unaffected: they carry their own snapshots.
func (s *ProcessService) UpdateProcess(ctx context.Context, processID uuid.UUID, req *model.CreateProcessDTO) (*model.Process, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: update request cannot be nil", model.ErrInvalid)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("process name cannot be empty")
	}
	if err := validateStages(req.Stages); err != nil {
		return nil, err
	}

	process, err := s.GetProcessByID(ctx, processID)
	if err != nil {
		return nil, err
	}

	process.Name = req.Name
	process.Owner = req.Owner
	process.Tags = req.Tags
	process.Stages = req.Stages
	process.Stages.Sort()

	if err := s.db.WithContext(ctx).Save(process).Error; err != nil {
		return nil, fmt.Errorf("failed to update process %s: %w", processID, err)
	}
	return process, nil
}

// DeleteProcess removes a process definition. Instances started from it keep
// running on their snapshots.
func (s *ProcessService) DeleteProcess(ctx context.Context, processID uuid.UUID) error {
	if processID == uuid.Nil {
		return fmt.Errorf("process ID cannot be nil")
	}

	result := s.db.WithContext(ctx).Delete(&model.Process{}, "id = ?", processID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete process %s: %w", processID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("process %s: %w", processID, model.ErrNotFound)
	}
	return nil
}

// validateStages rejects stage lists with duplicate IDs or non-positive
// order values. Empty lists are allowed; only starting an instance requires
// at least one stage.
func validateStages(stages model.StageList) error {
	seen := make(map[string]struct{}, len(stages))
	for _, stage := range stages {
		if stage.ID == "" {
			return fmt.Errorf("%w: stage ID cannot be empty", model.ErrInvalid)
		}
		if _, dup := seen[stage.ID]; dup {
			return fmt.Errorf("%w: duplicate stage ID %q", model.ErrInvalid, stage.ID)
		}
		seen[stage.ID] = struct{}{}
		if stage.Order <= 0 {
			return fmt.Errorf("%w: stage %q has non-positive order %d", model.ErrInvalid, stage.ID, stage.Order)
		}
		if stage.WIPLimit != nil && *stage.WIPLimit <= 0 {
			return fmt.Errorf("%w: stage %q has non-positive WIP limit", model.ErrInvalid, stage.ID)
		}
	}
	return nil
}
