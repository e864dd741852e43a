package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/flowhub/flowhub/internal/process/model"
)

func TestProcessService_CreateProcess(t *testing.T) {
	db, sqlMock := setupTestDB(t)
	service := NewProcessService(db)
	ctx := context.Background()

	sqlMock.ExpectExec(`INSERT INTO "processes"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	// Stages arrive out of order and are normalized on write.
	process, err := service.CreateProcess(ctx, &model.CreateProcessDTO{
		Name:  "Hiring Pipeline",
		Owner: "alice",
		Stages: model.StageList{
			{ID: "offer", Order: 3, Name: "Offer"},
			{ID: "screen", Order: 1, Name: "Screening"},
			{ID: "interview", Order: 2, Name: "Interview"},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "screen", process.Stages[0].ID)
	assert.Equal(t, "interview", process.Stages[1].ID)
	assert.Equal(t, "offer", process.Stages[2].ID)
}

func TestProcessService_CreateProcess_ValidationErrors(t *testing.T) {
	db, _ := setupTestDB(t)
	service := NewProcessService(db)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *model.CreateProcessDTO
		wantErr string
	}{
		{
			name:    "nil request",
			req:     nil,
			wantErr: "cannot be nil",
		},
		{
			name:    "empty name",
			req:     &model.CreateProcessDTO{},
			wantErr: "name cannot be empty",
		},
		{
			name: "duplicate stage IDs",
			req: &model.CreateProcessDTO{
				Name: "p",
				Stages: model.StageList{
					{ID: "a", Order: 1},
					{ID: "a", Order: 2},
				},
			},
			wantErr: "duplicate stage ID",
		},
		{
			name: "non-positive order",
			req: &model.CreateProcessDTO{
				Name:   "p",
				Stages: model.StageList{{ID: "a", Order: 0}},
			},
			wantErr: "non-positive order",
		},
		{
			name: "non-positive WIP limit",
			req: &model.CreateProcessDTO{
				Name:   "p",
				Stages: model.StageList{{ID: "a", Order: 1, WIPLimit: intp(0)}},
			},
			wantErr: "non-positive WIP limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateProcess(ctx, tt.req)
			assert.ErrorIs(t, err, model.ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProcessService_CreateProcess_AllowsEmptyStages(t *testing.T) {
	db, sqlMock := setupTestDB(t)
	service := NewProcessService(db)

	sqlMock.ExpectExec(`INSERT INTO "processes"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	// A definition may exist without stages; only starting an instance
	// requires at least one.
	process, err := service.CreateProcess(context.Background(), &model.CreateProcessDTO{Name: "Draft"})
	assert.NoError(t, err)
	assert.Empty(t, process.Stages)
}

func TestProcessService_GetProcessByID_NotFound(t *testing.T) {
	db, sqlMock := setupTestDB(t)
	service := NewProcessService(db)

	processID := uuid.New()
	sqlMock.ExpectQuery(`SELECT \* FROM "processes" WHERE id = \$1`).
		WithArgs(processID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := service.GetProcessByID(context.Background(), processID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestProcessService_GetProcessByID_NilID(t *testing.T) {
	db, _ := setupTestDB(t)
	service := NewProcessService(db)

	_, err := service.GetProcessByID(context.Background(), uuid.Nil)
	assert.Error(t, err)
}

func TestProcessService_ListProcesses_OwnerFilter(t *testing.T) {
	db, sqlMock := setupTestDB(t)
	service := NewProcessService(db)

	owner := "alice"
	sqlMock.ExpectQuery(`SELECT \* FROM "processes" WHERE owner = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs(owner, 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner"}).
			AddRow(uuid.New(), "Hiring Pipeline", owner))

	processes, err := service.ListProcesses(context.Background(), model.ProcessFilter{Owner: &owner})
	assert.NoError(t, err)
	assert.Len(t, processes, 1)
	assert.Equal(t, owner, processes[0].Owner)
}

func TestProcessService_DeleteProcess_NotFound(t *testing.T) {
	db, sqlMock := setupTestDB(t)
	service := NewProcessService(db)

	processID := uuid.New()
	sqlMock.ExpectExec(`DELETE FROM "processes" WHERE id = \$1`).
		WithArgs(processID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := service.DeleteProcess(context.Background(), processID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func intp(v int) *int {
	return &v
}
