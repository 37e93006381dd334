package http

import (
	"github.com/castlemill/tms-proxy/internal/domain/dto"
	"github.com/castlemill/tms-proxy/internal/middleware"
	"github.com/castlemill/tms-proxy/internal/upstream"
	"github.com/gin-gonic/gin"
)

// TasksHandler proxies translation task listing and creation.
type TasksHandler struct {
	api   *upstream.Client
	audit *middleware.AuditRecorder
}

// NewTasksHandler creates a new TasksHandler.
func NewTasksHandler(api *upstream.Client, audit *middleware.AuditRecorder) *TasksHandler {
	return &TasksHandler{api: api, audit: audit}
}

// List handles GET /api/projects/:projectId/tasks requests.
//
// @Summary      List tasks
// @Tags         Tasks
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Success      200 {object} dto.Envelope
// @Router       /api/projects/{projectId}/tasks [get]
func (h *TasksHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	raw, err := h.api.ListTasks(c.Request.Context(), rc.Token, rc.ProjectID)
	if err != nil {
		builder.Error(err)
		return
	}
	builder.SuccessOK(raw)
}

// Get handles GET /api/projects/:projectId/tasks/:taskId requests.
//
// @Summary      Get one task
// @Tags         Tasks
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Param        taskId path string true "Task identifier"
// @Success      200 {object} dto.Envelope
// @Router       /api/projects/{projectId}/tasks/{taskId} [get]
func (h *TasksHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	raw, err := h.api.GetTask(c.Request.Context(), rc.Token, rc.ProjectID, c.Param("taskId"))
	if err != nil {
		builder.Error(err)
		return
	}
	builder.SuccessOK(raw)
}

// Create handles POST /api/projects/:projectId/tasks requests.
//
// @Summary      Create a task
// @Description  Creates a translation or review task assigning languages to users. The write is attempted exactly once.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Param        request body dto.CreateTaskRequest true "Task definition"
// @Success      201 {object} dto.Envelope
// @Failure      400 {object} dto.Envelope "Invalid request body"
// @Router       /api/projects/{projectId}/tasks [post]
func (h *TasksHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.CreateTaskRequest](c)
	if err != nil {
		builder.Error(err)
		return
	}

	raw, err := h.api.CreateTask(c.Request.Context(), rc.Token, rc.ProjectID, req)
	if err != nil {
		builder.Error(err)
		return
	}

	h.audit.Audit(c, "create_task", rc.ProjectID, map[string]interface{}{
		"title":          req.Title,
		"language_count": len(req.Languages),
	})
	builder.SuccessCreated(raw)
}
