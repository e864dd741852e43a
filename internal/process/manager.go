package process

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flowhub/flowhub/internal/attachment"
	"github.com/flowhub/flowhub/internal/process/router"
	"github.com/flowhub/flowhub/internal/process/service"
	"github.com/flowhub/flowhub/internal/template"
)

// Manager wires the services and HTTP routers together and registers the
// API surface on a gin engine.
type Manager struct {
	processService  *service.ProcessService
	instanceService *service.InstanceService
	taskService     *service.TaskService
	templateService *template.Service

	processRouter    *router.ProcessRouter
	instanceRouter   *router.InstanceRouter
	taskRouter       *router.TaskRouter
	templateRouter   *router.TemplateRouter
	attachmentRouter *attachment.Router
}

// NewManager builds the full service and router graph on top of one
// database handle and one attachment storage driver.
func NewManager(db *gorm.DB, storage attachment.StorageDriver) *Manager {
	processService := service.NewProcessService(db)
	instanceService := service.NewInstanceService(db, processService)
	taskService := service.NewTaskService(db)
	templateService := template.NewService(db)
	attachmentService := attachment.NewService(db, storage)

	return &Manager{
		processService:  processService,
		instanceService: instanceService,
		taskService:     taskService,
		templateService: templateService,

		processRouter:    router.NewProcessRouter(processService, taskService),
		instanceRouter:   router.NewInstanceRouter(instanceService),
		taskRouter:       router.NewTaskRouter(taskService),
		templateRouter:   router.NewTemplateRouter(templateService),
		attachmentRouter: attachment.NewRouter(attachmentService),
	}
}

// RegisterRoutes mounts the API under /api.
func (m *Manager) RegisterRoutes(engine *gin.Engine) {
	api := engine.Group("/api")

	processes := api.Group("/processes")
	processes.GET("", m.processRouter.List)
	processes.POST("", m.processRouter.Create)
	processes.GET("/:id", m.processRouter.Get)
	processes.PUT("/:id", m.processRouter.Update)
	processes.DELETE("/:id", m.processRouter.Delete)
	processes.GET("/:id/tasks", m.processRouter.Tasks)
	processes.GET("/:id/stage-loads", m.processRouter.StageLoads)

	instances := api.Group("/instances")
	instances.GET("", m.instanceRouter.List)
	instances.POST("", m.instanceRouter.Start)
	instances.GET("/:id", m.instanceRouter.Get)
	instances.POST("/:id/advance", m.instanceRouter.Advance)
	instances.PATCH("/:id/status", m.instanceRouter.UpdateStatus)
	instances.GET("/:id/steps", m.instanceRouter.Steps)
	instances.PUT("/:id/steps/:stageId", m.instanceRouter.UpdateStep)
	instances.DELETE("/:id", m.instanceRouter.Delete)

	tasks := api.Group("/tasks")
	tasks.GET("", m.taskRouter.List)
	tasks.POST("", m.taskRouter.Create)
	tasks.GET("/:id", m.taskRouter.Get)
	tasks.PUT("/:id", m.taskRouter.Update)
	tasks.PATCH("/:id/stage", m.taskRouter.Reassign)
	tasks.DELETE("/:id", m.taskRouter.Delete)
	tasks.POST("/:id/attachments", m.attachmentRouter.Upload)
	tasks.GET("/:id/attachments", m.attachmentRouter.List)

	templates := api.Group("/templates")
	templates.GET("", m.templateRouter.List)
	templates.GET("/:id", m.templateRouter.Get)
	templates.POST("/:id/instantiate", m.templateRouter.Instantiate)

	attachments := api.Group("/attachments")
	attachments.GET("/:key", m.attachmentRouter.Download)
	attachments.DELETE("/:id", m.attachmentRouter.Delete)
}
