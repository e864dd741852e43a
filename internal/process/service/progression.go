package service

import (
	"fmt"
	"math"
	"time"

	"github.com/flowhub/flowhub/internal/process/model"
)

// DefaultCompletionHorizon is the estimated-completion window applied when a
// caller starts an instance without supplying one.
const DefaultCompletionHorizon = 7 * 24 * time.Hour

// progressPercent computes the integer progress percentage for an instance
// sitting on stageIndex out of totalStages. The numerator counts the stage
// being worked on, so stage 0 of 4 is already 25%.
func progressPercent(stageIndex, totalStages int) int {
	return int(math.Round(float64(stageIndex+1) / float64(totalStages) * 100))
}

// BuildInstance constructs a new ProcessInstance from a process definition.
// The process must have at least one stage; callers are expected to check
// this before offering the operation, so a violation is an error, not a
// recoverable condition.
//
// ProcessName, CurrentStageName and TotalStages are frozen at this point and
// never re-synced from the definition. The first stage starts InProgress,
// every other stage NotStarted.
//
// A single-stage process yields progress 100 with status still Active; only
// advancing (or an explicit status change) completes an instance.
func BuildInstance(process *model.Process, req *model.StartInstanceDTO, startedBy string, now time.Time) (*model.ProcessInstance, error) {
	if process == nil {
		return nil, fmt.Errorf("process cannot be nil")
	}
	if len(process.Stages) == 0 {
		return nil, fmt.Errorf("%w: process %s has no stages", model.ErrInvalid, process.ID)
	}

	stepStatuses := make(model.StepStatusMap, len(process.Stages))
	for i, stage := range process.Stages {
		state := model.StepStateNotStarted
		if i == 0 {
			state = model.StepStateInProgress
		}
		stepStatuses[stage.ID] = model.StepStatus{
			Status:    state,
			Notes:     "",
			UpdatedAt: now,
			UpdatedBy: startedBy,
		}
	}

	estimatedCompletion := now.Add(DefaultCompletionHorizon)
	if req.EstimatedCompletion != nil {
		estimatedCompletion = *req.EstimatedCompletion
	}

	priority := req.Priority
	if priority == "" {
		priority = model.InstancePriorityMedium
	}

	return &model.ProcessInstance{
		ProcessID:           process.ID,
		ProcessName:         process.Name,
		InstanceName:        req.InstanceName,
		Status:              model.InstanceStatusActive,
		CurrentStageIndex:   0,
		CurrentStageName:    process.Stages[0].Name,
		TotalStages:         len(process.Stages),
		Progress:            progressPercent(0, len(process.Stages)),
		AssignedTo:          req.AssignedTo,
		Priority:            priority,
		StartedAt:           now,
		EstimatedCompletion: estimatedCompletion,
		StepStatuses:        stepStatuses,
	}, nil
}

// AdvanceInstance moves an instance forward one stage in place and reports
// whether anything changed.
//
// When the instance already sits on its final stage the call is a no-op and
// the instance is left byte-for-byte unchanged (including UpdatedAt).
// Otherwise the stage index and progress are recomputed and the instance
// auto-completes when it lands on the last stage; any other landing stage
// forces status back to Active, whatever it was before.
//
// stages may be nil when the owning definition no longer exists; the stage
// name then keeps its previous denormalized value.
func AdvanceInstance(instance *model.ProcessInstance, stages model.StageList, now time.Time) bool {
	nextIndex := instance.CurrentStageIndex + 1
	if nextIndex >= instance.TotalStages {
		return false
	}

	instance.CurrentStageIndex = nextIndex
	instance.Progress = progressPercent(nextIndex, instance.TotalStages)
	if nextIndex == instance.TotalStages-1 {
		instance.Status = model.InstanceStatusCompleted
	} else {
		instance.Status = model.InstanceStatusActive
	}
	if nextIndex < len(stages) {
		instance.CurrentStageName = stages[nextIndex].Name
	}
	instance.UpdatedAt = now
	return true
}
