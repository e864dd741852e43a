package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/flowhub/flowhub/internal/process/model"
	"github.com/flowhub/flowhub/internal/process/service"
)

// ProcessRouter exposes process definitions and their board views.
type ProcessRouter struct {
	ps *service.ProcessService
	ts *service.TaskService
}

func NewProcessRouter(ps *service.ProcessService, ts *service.TaskService) *ProcessRouter {
	return &ProcessRouter{ps: ps, ts: ts}
}

// List handles GET /api/processes.
// Optional query filters: owner, tag, offset, limit.
func (pr *ProcessRouter) List(c *gin.Context) {
	var filter model.ProcessFilter
	if owner := c.Query("owner"); owner != "" {
		filter.Owner = &owner
	}
	if tag := c.Query("tag"); tag != "" {
		filter.Tag = &tag
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			badRequest(c, "invalid 'offset' query parameter, must be an integer")
			return
		}
		filter.Offset = &offset
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			badRequest(c, "invalid 'limit' query parameter, must be an integer")
			return
		}
		filter.Limit = &limit
	}

	processes, err := pr.ps.ListProcesses(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, processes)
}

// Create handles POST /api/processes.
func (pr *ProcessRouter) Create(c *gin.Context) {
	var req model.CreateProcessDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	process, err := pr.ps.CreateProcess(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, process)
}

// Get handles GET /api/processes/:id.
func (pr *ProcessRouter) Get(c *gin.Context) {
	processID, ok := parseID(c)
	if !ok {
		return
	}

	process, err := pr.ps.GetProcessByID(c.Request.Context(), processID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, process)
}

// Update handles PUT /api/processes/:id.
func (pr *ProcessRouter) Update(c *gin.Context) {
	processID, ok := parseID(c)
	if !ok {
		return
	}

	var req model.CreateProcessDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	process, err := pr.ps.UpdateProcess(c.Request.Context(), processID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, process)
}

// Delete handles DELETE /api/processes/:id.
func (pr *ProcessRouter) Delete(c *gin.Context) {
	processID, ok := parseID(c)
	if !ok {
		return
	}

	if err := pr.ps.DeleteProcess(c.Request.Context(), processID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Tasks handles GET /api/processes/:id/tasks.
func (pr *ProcessRouter) Tasks(c *gin.Context) {
	processID, ok := parseID(c)
	if !ok {
		return
	}

	tasks, err := pr.ts.ListTasks(c.Request.Context(), &processID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// StageLoads handles GET /api/processes/:id/stage-loads. The response is
// advisory WIP data for the board header; nothing here blocks task moves.
func (pr *ProcessRouter) StageLoads(c *gin.Context) {
	processID, ok := parseID(c)
	if !ok {
		return
	}

	process, err := pr.ps.GetProcessByID(c.Request.Context(), processID)
	if err != nil {
		respondError(c, err)
		return
	}

	loads, err := pr.ts.StageLoads(c.Request.Context(), process)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loads)
}

// parseID reads the :id path parameter as a UUID, answering 400 itself when
// the value is malformed.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid id: "+err.Error())
		return uuid.Nil, false
	}
	return id, true
}
