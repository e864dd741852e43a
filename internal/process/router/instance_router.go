package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/flowhub/flowhub/internal/identity"
	"github.com/flowhub/flowhub/internal/process/model"
	"github.com/flowhub/flowhub/internal/process/service"
)

// InstanceRouter exposes the lifecycle of process instances.
type InstanceRouter struct {
	is *service.InstanceService
}

func NewInstanceRouter(is *service.InstanceService) *InstanceRouter {
	return &InstanceRouter{is: is}
}

// List handles GET /api/instances.
// Optional query filters: processId, status.
func (ir *InstanceRouter) List(c *gin.Context) {
	var filter model.InstanceFilter
	if processIDStr := c.Query("processId"); processIDStr != "" {
		processID, err := uuid.Parse(processIDStr)
		if err != nil {
			badRequest(c, "invalid 'processId' query parameter: "+err.Error())
			return
		}
		filter.ProcessID = &processID
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := model.InstanceStatus(statusStr)
		if !status.Valid() {
			badRequest(c, "invalid 'status' query parameter")
			return
		}
		filter.Status = &status
	}

	instances, err := ir.is.ListInstances(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, instances)
}

// Start handles POST /api/instances: instantiates a process definition into
// a running instance at its first stage.
func (ir *InstanceRouter) Start(c *gin.Context) {
	var req model.StartInstanceDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	instance, err := ir.is.StartInstance(c.Request.Context(), &req, identity.ActorName(c.Request.Context()))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, instance)
}

// Get handles GET /api/instances/:id.
func (ir *InstanceRouter) Get(c *gin.Context) {
	instanceID, ok := parseID(c)
	if !ok {
		return
	}

	instance, err := ir.is.GetInstanceByID(c.Request.Context(), instanceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, instance)
}

// Advance handles POST /api/instances/:id/advance. Advancing an instance
// already on its final stage answers 200 with the unchanged record.
func (ir *InstanceRouter) Advance(c *gin.Context) {
	instanceID, ok := parseID(c)
	if !ok {
		return
	}

	instance, err := ir.is.AdvanceToNextStage(c.Request.Context(), instanceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, instance)
}

// UpdateStatus handles PATCH /api/instances/:id/status.
func (ir *InstanceRouter) UpdateStatus(c *gin.Context) {
	instanceID, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateInstanceStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !req.Status.Valid() {
		badRequest(c, "invalid instance status")
		return
	}

	instance, err := ir.is.UpdateStatus(c.Request.Context(), instanceID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, instance)
}

// Steps handles GET /api/instances/:id/steps.
func (ir *InstanceRouter) Steps(c *gin.Context) {
	instanceID, ok := parseID(c)
	if !ok {
		return
	}

	statuses, err := ir.is.GetStepStatuses(c.Request.Context(), instanceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// UpdateStep handles PUT /api/instances/:id/steps/:stageId.
func (ir *InstanceRouter) UpdateStep(c *gin.Context) {
	instanceID, ok := parseID(c)
	if !ok {
		return
	}
	stageID := c.Param("stageId")
	if stageID == "" {
		badRequest(c, "stage ID is required")
		return
	}

	var req model.UpdateStepStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	instance, err := ir.is.UpdateStepStatus(c.Request.Context(), instanceID, stageID, &req, identity.ActorName(c.Request.Context()))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, instance)
}

// Delete handles DELETE /api/instances/:id.
func (ir *InstanceRouter) Delete(c *gin.Context) {
	instanceID, ok := parseID(c)
	if !ok {
		return
	}

	if err := ir.is.DeleteInstance(c.Request.Context(), instanceID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
