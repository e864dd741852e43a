package model

import (
	"time"

	"github.com/google/uuid"
)

// InstanceStatus is the overall status of a process instance.
//
// The status field is a free-assignment enum: any value may overwrite any
// other (Completed back to Active included). Transitions are not guarded and
// board clients depend on that.
type InstanceStatus string

const (
	InstanceStatusActive    InstanceStatus = "Active"
	InstanceStatusPaused    InstanceStatus = "Paused"
	InstanceStatusCompleted InstanceStatus = "Completed"
	InstanceStatusCancelled InstanceStatus = "Cancelled"
)

// Valid reports whether s is one of the four known statuses.
func (s InstanceStatus) Valid() bool {
	switch s {
	case InstanceStatusActive, InstanceStatusPaused, InstanceStatusCompleted, InstanceStatusCancelled:
		return true
	}
	return false
}

// InstancePriority is the descriptive priority of an instance. Not enforced.
type InstancePriority string

const (
	InstancePriorityHigh   InstancePriority = "High"
	InstancePriorityMedium InstancePriority = "Medium"
	InstancePriorityLow    InstancePriority = "Low"
)

// StepState is the per-stage execution status within one instance.
type StepState string

const (
	StepStateNotStarted StepState = "NotStarted"
	StepStateInProgress StepState = "InProgress"
	StepStateCompleted  StepState = "Completed"
	StepStateBlocked    StepState = "Blocked"
)

// StepStatus records the execution status and notes of one stage within one
// instance. Stage-level status and the instance-level stage pointer are
// independent signals; updating one never reconciles the other.
type StepStatus struct {
	Status    StepState `json:"status"`
	Notes     string    `json:"notes"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
}

// StepStatusMap maps stage IDs to their StepStatus, persisted as JSONB so an
// instance and its step statuses are always written as one record.
type StepStatusMap map[string]StepStatus

// ProcessInstance is one running execution of a process.
//
// ProcessName, CurrentStageName and TotalStages are snapshots taken at
// creation (or at the last advance, for the stage name). They are not live
// joins against the definition: editing or deleting the process later leaves
// running instances untouched.
type ProcessInstance struct {
	BaseModel
	ProcessID           uuid.UUID        `gorm:"type:uuid;column:process_id;not null" json:"processId"`
	ProcessName         string           `gorm:"type:varchar(255);column:process_name" json:"processName"`
	InstanceName        string           `gorm:"type:varchar(255);column:instance_name;not null" json:"instanceName"`
	Status              InstanceStatus   `gorm:"type:varchar(20);column:status;not null" json:"status"`
	CurrentStageIndex   int              `gorm:"column:current_stage_index;not null" json:"currentStageIndex"`
	CurrentStageName    string           `gorm:"type:varchar(255);column:current_stage_name" json:"currentStageName"`
	TotalStages         int              `gorm:"column:total_stages;not null" json:"totalStages"`
	Progress            int              `gorm:"column:progress;not null" json:"progress"`
	AssignedTo          string           `gorm:"type:varchar(255);column:assigned_to" json:"assignedTo"`
	Priority            InstancePriority `gorm:"type:varchar(10);column:priority" json:"priority"`
	StartedAt           time.Time        `gorm:"type:timestamptz;column:started_at" json:"startedAt"`
	EstimatedCompletion time.Time        `gorm:"type:timestamptz;column:estimated_completion" json:"estimatedCompletion"`
	StepStatuses        StepStatusMap    `gorm:"type:jsonb;column:step_statuses;serializer:json" json:"stepStatuses"`
}

func (pi *ProcessInstance) TableName() string {
	return "process_instances"
}

// StartInstanceDTO is the request body for starting a new instance.
type StartInstanceDTO struct {
	ProcessID           uuid.UUID        `json:"processId" binding:"required"`
	InstanceName        string           `json:"instanceName" binding:"required"`
	AssignedTo          string           `json:"assignedTo"`
	Priority            InstancePriority `json:"priority"`
	EstimatedCompletion *time.Time       `json:"estimatedCompletion,omitempty"` // defaults to start + 7 days
}

// UpdateInstanceStatusDTO is the request body for an explicit status change.
type UpdateInstanceStatusDTO struct {
	Status InstanceStatus `json:"status" binding:"required"`
}

// UpdateStepStatusDTO is the request body for upserting one stage's status
// within an instance.
type UpdateStepStatusDTO struct {
	Status StepState `json:"status" binding:"required"`
	Notes  string    `json:"notes"`
}

// InstanceFilter narrows instance listings.
type InstanceFilter struct {
	ProcessID *uuid.UUID
	Status    *InstanceStatus
}
