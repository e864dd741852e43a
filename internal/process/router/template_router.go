package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/flowhub/flowhub/internal/identity"
	"github.com/flowhub/flowhub/internal/template"
)

// TemplateRouter exposes the built-in template catalog and instantiation
// of processes from it.
type TemplateRouter struct {
	ts *template.Service
}

func NewTemplateRouter(ts *template.Service) *TemplateRouter {
	return &TemplateRouter{ts: ts}
}

// List handles GET /api/templates. Optional query filter: category, where
// "all" means no filter.
func (tr *TemplateRouter) List(c *gin.Context) {
	c.JSON(http.StatusOK, tr.ts.ListByCategory(c.Query("category")))
}

// Get handles GET /api/templates/:id.
func (tr *TemplateRouter) Get(c *gin.Context) {
	templateID, ok := parseTemplateID(c)
	if !ok {
		return
	}

	tpl, err := tr.ts.GetByID(templateID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

type instantiateRequest struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

// Instantiate handles POST /api/templates/:id/instantiate and returns the
// newly created process.
func (tr *TemplateRouter) Instantiate(c *gin.Context) {
	templateID, ok := parseTemplateID(c)
	if !ok {
		return
	}

	var req instantiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.Owner == "" {
		req.Owner = identity.ActorName(c.Request.Context())
	}

	process, err := tr.ts.Instantiate(c.Request.Context(), templateID, req.Name, req.Owner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, process)
}

// parseTemplateID reads the numeric :id path parameter. Catalog templates
// carry small fixed integer IDs rather than UUIDs.
func parseTemplateID(c *gin.Context) (int, bool) {
	templateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid 'id' path parameter: "+err.Error())
		return 0, false
	}
	return templateID, true
}
