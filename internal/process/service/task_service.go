package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flowhub/flowhub/internal/process/model"
)

// TaskService owns board tasks: the cards placed into a process's stages.
// Stage placement is independent of any running instance, and moves are
// never blocked by WIP limits; the limits are advisory display data.
type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// CreateTask stores a new task in the given stage of a process board.
func (s *TaskService) CreateTask(ctx context.Context, req *model.CreateTaskDTO) (*model.Task, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: create request cannot be nil", model.ErrInvalid)
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: task title cannot be empty", model.ErrInvalid)
	}
	if req.StageID == "" {
		return nil, fmt.Errorf("%w: stage ID cannot be empty", model.ErrInvalid)
	}

	priority := req.Priority
	if priority == "" {
		priority = model.TaskPriorityMedium
	}

	task := &model.Task{
		ProcessID:   req.ProcessID,
		StageID:     req.StageID,
		Title:       req.Title,
		Description: req.Description,
		Assignee:    req.Assignee,
		Priority:    priority,
		DueDate:     req.DueDate,
	}
	if err := s.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// GetTaskByID retrieves a task, mapping a missing row to ErrNotFound.
func (s *TaskService) GetTaskByID(ctx context.Context, taskID uuid.UUID) (*model.Task, error) {
	if taskID == uuid.Nil {
		return nil, fmt.Errorf("task ID cannot be nil")
	}

	var task model.Task
	result := s.db.WithContext(ctx).First(&task, "id = ?", taskID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task %s: %w", taskID, model.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve task %s: %w", taskID, result.Error)
	}
	return &task, nil
}

// ListTasks returns all tasks, or the tasks of one process when processID is
// non-nil.
func (s *TaskService) ListTasks(ctx context.Context, processID *uuid.UUID) ([]model.Task, error) {
	query := s.db.WithContext(ctx).Model(&model.Task{})
	if processID != nil {
		query = query.Where("process_id = ?", *processID)
	}

	var tasks []model.Task
	if err := query.Order("created_at ASC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask edits a task's display fields. Absent fields keep their values;
// stage placement changes go through ReassignStage.
func (s *TaskService) UpdateTask(ctx context.Context, taskID uuid.UUID, req *model.UpdateTaskDTO) (*model.Task, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: update request cannot be nil", model.ErrInvalid)
	}

	task, err := s.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("%w: task title cannot be empty", model.ErrInvalid)
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Assignee != nil {
		task.Assignee = *req.Assignee
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	if err := s.db.WithContext(ctx).Save(task).Error; err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", taskID, err)
	}
	return task, nil
}

// ReassignStage moves a task to the destination stage unconditionally.
// WIP limits are not consulted: the board visualizes over-limit stages but a
// move is never rejected for crossing one.
func (s *TaskService) ReassignStage(ctx context.Context, taskID uuid.UUID, stageID string) (*model.Task, error) {
	if stageID == "" {
		return nil, fmt.Errorf("%w: stage ID cannot be empty", model.ErrInvalid)
	}

	task, err := s.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	task.StageID = stageID
	if err := s.db.WithContext(ctx).Save(task).Error; err != nil {
		return nil, fmt.Errorf("failed to reassign task %s: %w", taskID, err)
	}
	return task, nil
}

// DeleteTask removes a task from its board.
func (s *TaskService) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	if taskID == uuid.Nil {
		return fmt.Errorf("task ID cannot be nil")
	}

	result := s.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", taskID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("task %s: %w", taskID, model.ErrNotFound)
	}
	return nil
}

// StageLoads reports the advisory WIP situation of every stage of a process:
// task counts against the configured caps. Purely informational.
func (s *TaskService) StageLoads(ctx context.Context, process *model.Process) ([]model.StageLoad, error) {
	if process == nil {
		return nil, fmt.Errorf("process cannot be nil")
	}

	tasks, err := s.ListTasks(ctx, &process.ID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(process.Stages))
	for _, task := range tasks {
		counts[task.StageID]++
	}

	loads := make([]model.StageLoad, 0, len(process.Stages))
	for _, stage := range process.Stages {
		load := model.StageLoad{
			StageID:   stage.ID,
			StageName: stage.Name,
			TaskCount: counts[stage.ID],
			WIPLimit:  stage.WIPLimit,
		}
		if stage.WIPLimit != nil && load.TaskCount >= *stage.WIPLimit {
			load.OverLimit = true
		}
		loads = append(loads, load)
	}
	return loads, nil
}
