package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/flowhub/flowhub/internal/process/model"
)

func fourStageProcess() *model.Process {
	p := &model.Process{
		Name: "Order Fulfillment",
		Stages: model.StageList{
			{ID: "stage-a", Order: 1, Name: "A"},
			{ID: "stage-b", Order: 2, Name: "B"},
			{ID: "stage-c", Order: 3, Name: "C"},
			{ID: "stage-d", Order: 4, Name: "D"},
		},
	}
	p.ID = uuid.New()
	return p
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name        string
		stageIndex  int
		totalStages int
		want        int
	}{
		{"first of four", 0, 4, 25},
		{"second of four", 1, 4, 50},
		{"third of four", 2, 4, 75},
		{"last of four", 3, 4, 100},
		{"first of three rounds up", 0, 3, 33},
		{"second of three rounds up", 1, 3, 67},
		{"last of three", 2, 3, 100},
		{"single stage", 0, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, progressPercent(tt.stageIndex, tt.totalStages))
		})
	}
}

func TestBuildInstance(t *testing.T) {
	process := fourStageProcess()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	req := &model.StartInstanceDTO{
		ProcessID:    process.ID,
		InstanceName: "Order #42",
		AssignedTo:   "alice",
	}

	instance, err := BuildInstance(process, req, "alice", now)
	assert.NoError(t, err)
	assert.Equal(t, process.ID, instance.ProcessID)
	assert.Equal(t, "Order Fulfillment", instance.ProcessName)
	assert.Equal(t, "Order #42", instance.InstanceName)
	assert.Equal(t, model.InstanceStatusActive, instance.Status)
	assert.Equal(t, 0, instance.CurrentStageIndex)
	assert.Equal(t, "A", instance.CurrentStageName)
	assert.Equal(t, 4, instance.TotalStages)
	assert.Equal(t, 25, instance.Progress)
	assert.Equal(t, model.InstancePriorityMedium, instance.Priority, "missing priority defaults to Medium")
	assert.Equal(t, now, instance.StartedAt)
	assert.Equal(t, now.Add(DefaultCompletionHorizon), instance.EstimatedCompletion)

	// The first stage starts InProgress, the rest NotStarted.
	assert.Len(t, instance.StepStatuses, 4)
	assert.Equal(t, model.StepStateInProgress, instance.StepStatuses["stage-a"].Status)
	assert.Equal(t, model.StepStateNotStarted, instance.StepStatuses["stage-b"].Status)
	assert.Equal(t, model.StepStateNotStarted, instance.StepStatuses["stage-c"].Status)
	assert.Equal(t, model.StepStateNotStarted, instance.StepStatuses["stage-d"].Status)
	assert.Equal(t, "alice", instance.StepStatuses["stage-a"].UpdatedBy)
}

func TestBuildInstance_ExplicitFields(t *testing.T) {
	process := fourStageProcess()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	deadline := now.Add(48 * time.Hour)
	req := &model.StartInstanceDTO{
		ProcessID:           process.ID,
		InstanceName:        "Rush order",
		Priority:            model.InstancePriorityHigh,
		EstimatedCompletion: &deadline,
	}

	instance, err := BuildInstance(process, req, "system", now)
	assert.NoError(t, err)
	assert.Equal(t, model.InstancePriorityHigh, instance.Priority)
	assert.Equal(t, deadline, instance.EstimatedCompletion)
}

func TestBuildInstance_Errors(t *testing.T) {
	now := time.Now().UTC()
	req := &model.StartInstanceDTO{InstanceName: "x"}

	_, err := BuildInstance(nil, req, "system", now)
	assert.Error(t, err)

	empty := &model.Process{Name: "Empty"}
	empty.ID = uuid.New()
	_, err = BuildInstance(empty, req, "system", now)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no stages")
}

func TestAdvanceInstance_FullRun(t *testing.T) {
	process := fourStageProcess()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	instance, err := BuildInstance(process, &model.StartInstanceDTO{
		ProcessID:    process.ID,
		InstanceName: "run",
	}, "system", now)
	assert.NoError(t, err)

	steps := []struct {
		index    int
		name     string
		progress int
		status   model.InstanceStatus
	}{
		{1, "B", 50, model.InstanceStatusActive},
		{2, "C", 75, model.InstanceStatusActive},
		{3, "D", 100, model.InstanceStatusCompleted},
	}

	for _, step := range steps {
		changed := AdvanceInstance(instance, process.Stages, now.Add(time.Hour))
		assert.True(t, changed)
		assert.Equal(t, step.index, instance.CurrentStageIndex)
		assert.Equal(t, step.name, instance.CurrentStageName)
		assert.Equal(t, step.progress, instance.Progress)
		assert.Equal(t, step.status, instance.Status)
	}

	// Already on the final stage: a further advance changes nothing.
	before := *instance
	changed := AdvanceInstance(instance, process.Stages, now.Add(2*time.Hour))
	assert.False(t, changed)
	assert.Equal(t, before, *instance)
}

func TestAdvanceInstance_ReactivatesPausedInstance(t *testing.T) {
	process := fourStageProcess()
	now := time.Now().UTC()
	instance, err := BuildInstance(process, &model.StartInstanceDTO{
		ProcessID:    process.ID,
		InstanceName: "paused run",
	}, "system", now)
	assert.NoError(t, err)

	instance.Status = model.InstanceStatusPaused

	changed := AdvanceInstance(instance, process.Stages, now)
	assert.True(t, changed)
	assert.Equal(t, model.InstanceStatusActive, instance.Status, "advancing to a non-final stage forces Active")
}

func TestAdvanceInstance_MissingDefinitionKeepsStageName(t *testing.T) {
	process := fourStageProcess()
	now := time.Now().UTC()
	instance, err := BuildInstance(process, &model.StartInstanceDTO{
		ProcessID:    process.ID,
		InstanceName: "orphaned run",
	}, "system", now)
	assert.NoError(t, err)

	changed := AdvanceInstance(instance, nil, now)
	assert.True(t, changed)
	assert.Equal(t, 1, instance.CurrentStageIndex)
	assert.Equal(t, 50, instance.Progress)
	assert.Equal(t, "A", instance.CurrentStageName, "denormalized name survives a deleted definition")
}

func TestBuildInstance_SingleStageBoundary(t *testing.T) {
	process := &model.Process{
		Name:   "One Step",
		Stages: model.StageList{{ID: "only", Order: 1, Name: "Only"}},
	}
	process.ID = uuid.New()
	now := time.Now().UTC()

	instance, err := BuildInstance(process, &model.StartInstanceDTO{
		ProcessID:    process.ID,
		InstanceName: "single",
	}, "system", now)
	assert.NoError(t, err)

	// Progress is already 100 but only an advance or an explicit status
	// change completes an instance, so it stays Active.
	assert.Equal(t, 100, instance.Progress)
	assert.Equal(t, model.InstanceStatusActive, instance.Status)

	changed := AdvanceInstance(instance, process.Stages, now)
	assert.False(t, changed)
	assert.Equal(t, model.InstanceStatusActive, instance.Status)
}
