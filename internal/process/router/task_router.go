package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/flowhub/flowhub/internal/process/model"
	"github.com/flowhub/flowhub/internal/process/service"
)

// TaskRouter exposes board tasks, including the drag-and-drop stage
// reassignment the board performs.
type TaskRouter struct {
	ts *service.TaskService
}

func NewTaskRouter(ts *service.TaskService) *TaskRouter {
	return &TaskRouter{ts: ts}
}

// List handles GET /api/tasks. Optional query filter: processId.
func (tr *TaskRouter) List(c *gin.Context) {
	var processID *uuid.UUID
	if processIDStr := c.Query("processId"); processIDStr != "" {
		id, err := uuid.Parse(processIDStr)
		if err != nil {
			badRequest(c, "invalid 'processId' query parameter: "+err.Error())
			return
		}
		processID = &id
	}

	tasks, err := tr.ts.ListTasks(c.Request.Context(), processID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Create handles POST /api/tasks.
func (tr *TaskRouter) Create(c *gin.Context) {
	var req model.CreateTaskDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	task, err := tr.ts.CreateTask(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Get handles GET /api/tasks/:id.
func (tr *TaskRouter) Get(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	task, err := tr.ts.GetTaskByID(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Update handles PUT /api/tasks/:id.
func (tr *TaskRouter) Update(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateTaskDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	task, err := tr.ts.UpdateTask(c.Request.Context(), taskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Reassign handles PATCH /api/tasks/:id/stage: the drop half of a
// drag-and-drop. The move is unconditional; WIP limits never reject it.
func (tr *TaskRouter) Reassign(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	var req model.ReassignTaskDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	task, err := tr.ts.ReassignStage(c.Request.Context(), taskID, req.StageID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/:id.
func (tr *TaskRouter) Delete(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	if err := tr.ts.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
