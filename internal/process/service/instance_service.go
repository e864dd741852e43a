package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flowhub/flowhub/internal/process/model"
)

// ProcessProvider supplies process definitions to the instance service.
// *ProcessService is the production implementation; tests substitute a mock.
type ProcessProvider interface {
	GetProcessByID(ctx context.Context, id uuid.UUID) (*model.Process, error)
}

// InstanceService owns the lifecycle of process instances: starting them from
// a definition, advancing the stage pointer, overwriting status, and
// upserting per-stage step statuses. An instance and its step statuses are
// always persisted as one record, so no write here spans multiple rows.
type InstanceService struct {
	db        *gorm.DB
	processes ProcessProvider
}

func NewInstanceService(db *gorm.DB, processes ProcessProvider) *InstanceService {
	return &InstanceService{db: db, processes: processes}
}

// StartInstance creates a new instance at stage 0 of the given process.
// The process must exist and have at least one stage.
func (s *InstanceService) StartInstance(ctx context.Context, req *model.StartInstanceDTO, startedBy string) (*model.ProcessInstance, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: start request cannot be nil", model.ErrInvalid)
	}
	if req.InstanceName == "" {
		return nil, fmt.Errorf("%w: instance name cannot be empty", model.ErrInvalid)
	}

	process, err := s.processes.GetProcessByID(ctx, req.ProcessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load process %s: %w", req.ProcessID, err)
	}

	instance, err := BuildInstance(process, req, startedBy, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(instance).Error; err != nil {
		return nil, fmt.Errorf("failed to create instance: %w", err)
	}

	slog.InfoContext(ctx, "process instance started",
		"instance_id", instance.ID,
		"process_id", instance.ProcessID,
		"total_stages", instance.TotalStages,
	)
	return instance, nil
}

// AdvanceToNextStage moves an instance forward one stage. Advancing an
// instance already on its final stage is a no-op that returns the stored
// record unchanged; only landing on the last stage marks the instance
// Completed.
func (s *InstanceService) AdvanceToNextStage(ctx context.Context, instanceID uuid.UUID) (*model.ProcessInstance, error) {
	instance, err := s.GetInstanceByID(ctx, instanceID)
	if err != nil {
		return nil, err
	}

	// Refresh the stage name from the live definition when it still exists.
	// A deleted definition is not an error: the denormalized name stays.
	var stages model.StageList
	if process, perr := s.processes.GetProcessByID(ctx, instance.ProcessID); perr == nil {
		stages = process.Stages
	} else if !errors.Is(perr, model.ErrNotFound) {
		return nil, fmt.Errorf("failed to load process %s: %w", instance.ProcessID, perr)
	}

	if !AdvanceInstance(instance, stages, time.Now().UTC()) {
		return instance, nil
	}

	if err := s.db.WithContext(ctx).Save(instance).Error; err != nil {
		return nil, fmt.Errorf("failed to save advanced instance %s: %w", instanceID, err)
	}

	slog.InfoContext(ctx, "process instance advanced",
		"instance_id", instance.ID,
		"stage_index", instance.CurrentStageIndex,
		"progress", instance.Progress,
		"status", instance.Status,
	)
	return instance, nil
}

// UpdateStatus unconditionally overwrites the instance status. Every pair of
// statuses is a legal transition; Completed back to Active included.
func (s *InstanceService) UpdateStatus(ctx context.Context, instanceID uuid.UUID, status model.InstanceStatus) (*model.ProcessInstance, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid instance status %q", model.ErrInvalid, status)
	}

	instance, err := s.GetInstanceByID(ctx, instanceID)
	if err != nil {
		return nil, err
	}

	instance.Status = status
	if err := s.db.WithContext(ctx).Save(instance).Error; err != nil {
		return nil, fmt.Errorf("failed to update status of instance %s: %w", instanceID, err)
	}
	return instance, nil
}

// UpdateStepStatus upserts the step-status entry for one stage of an
// instance. It never touches the stage pointer or the overall status; the
// two signals are rendered side by side and deliberately not reconciled.
func (s *InstanceService) UpdateStepStatus(ctx context.Context, instanceID uuid.UUID, stageID string, req *model.UpdateStepStatusDTO, updatedBy string) (*model.ProcessInstance, error) {
	if stageID == "" {
		return nil, fmt.Errorf("%w: stage ID cannot be empty", model.ErrInvalid)
	}
	if req == nil {
		return nil, fmt.Errorf("%w: step status request cannot be nil", model.ErrInvalid)
	}

	instance, err := s.GetInstanceByID(ctx, instanceID)
	if err != nil {
		return nil, err
	}

	if instance.StepStatuses == nil {
		instance.StepStatuses = make(model.StepStatusMap)
	}
	instance.StepStatuses[stageID] = model.StepStatus{
		Status:    req.Status,
		Notes:     req.Notes,
		UpdatedAt: time.Now().UTC(),
		UpdatedBy: updatedBy,
	}

	if err := s.db.WithContext(ctx).Save(instance).Error; err != nil {
		return nil, fmt.Errorf("failed to update step status of instance %s: %w", instanceID, err)
	}
	return instance, nil
}

// GetStepStatuses returns the step-status map of an instance. An instance
// without any recorded step statuses yields an empty map.
func (s *InstanceService) GetStepStatuses(ctx context.Context, instanceID uuid.UUID) (model.StepStatusMap, error) {
	instance, err := s.GetInstanceByID(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	if instance.StepStatuses == nil {
		return model.StepStatusMap{}, nil
	}
	return instance.StepStatuses, nil
}

// GetInstanceByID retrieves an instance, mapping a missing row to ErrNotFound.
func (s *InstanceService) GetInstanceByID(ctx context.Context, instanceID uuid.UUID) (*model.ProcessInstance, error) {
	if instanceID == uuid.Nil {
		return nil, fmt.Errorf("instance ID cannot be nil")
	}

	var instance model.ProcessInstance
	result := s.db.WithContext(ctx).First(&instance, "id = ?", instanceID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("instance %s: %w", instanceID, model.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve instance %s: %w", instanceID, result.Error)
	}
	return &instance, nil
}

// ListInstances returns instances matching the filter, most recently updated
// first.
func (s *InstanceService) ListInstances(ctx context.Context, filter model.InstanceFilter) ([]model.ProcessInstance, error) {
	query := s.db.WithContext(ctx).Model(&model.ProcessInstance{})
	if filter.ProcessID != nil {
		query = query.Where("process_id = ?", *filter.ProcessID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var instances []model.ProcessInstance
	if err := query.Order("updated_at DESC").Find(&instances).Error; err != nil {
		return nil, fmt.Errorf("failed to list instances: %w", err)
	}
	return instances, nil
}

// DeleteInstance removes an instance. Reaching a terminal status never
// deletes anything implicitly; this is the one destructive operation.
func (s *InstanceService) DeleteInstance(ctx context.Context, instanceID uuid.UUID) error {
	if instanceID == uuid.Nil {
		return fmt.Errorf("instance ID cannot be nil")
	}

	result := s.db.WithContext(ctx).Delete(&model.ProcessInstance{}, "id = ?", instanceID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete instance %s: %w", instanceID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("instance %s: %w", instanceID, model.ErrNotFound)
	}
	return nil
}
