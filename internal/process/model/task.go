package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskPriority is the display priority of a board task. Lowercase in the
// wire format, unlike instance priorities; the UI has always treated the two
// scales separately.
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// Task is a unit of work placed into exactly one stage of a process's board.
// StageID is the only frequently mutated field and its placement is
// independent of any running instance.
type Task struct {
	BaseModel
	ProcessID   uuid.UUID    `gorm:"type:uuid;column:process_id;not null" json:"processId"`
	StageID     string       `gorm:"type:varchar(100);column:stage_id;not null" json:"stageId"`
	Title       string       `gorm:"type:varchar(255);column:title;not null" json:"title"`
	Description string       `gorm:"type:text;column:description" json:"description"`
	Assignee    string       `gorm:"type:varchar(255);column:assignee" json:"assignee"`
	Priority    TaskPriority `gorm:"type:varchar(10);column:priority" json:"priority"`
	DueDate     *time.Time   `gorm:"type:timestamptz;column:due_date" json:"dueDate,omitempty"`
}

func (t *Task) TableName() string {
	return "tasks"
}

// CreateTaskDTO is the request body for creating a task.
type CreateTaskDTO struct {
	ProcessID   uuid.UUID    `json:"processId" binding:"required"`
	StageID     string       `json:"stageId" binding:"required"`
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description"`
	Assignee    string       `json:"assignee"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
}

// UpdateTaskDTO is the request body for editing a task's display fields.
// Stage placement changes go through the dedicated reassign operation.
type UpdateTaskDTO struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Assignee    *string       `json:"assignee,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
	DueDate     *time.Time    `json:"dueDate,omitempty"`
}

// ReassignTaskDTO is the request body for moving a task to another stage.
type ReassignTaskDTO struct {
	StageID string `json:"stageId" binding:"required"`
}
