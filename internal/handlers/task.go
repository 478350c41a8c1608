package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/srinjoywork/Module-5/internal/auth"
	dom "github.com/srinjoywork/Module-5/internal/domain"
	"github.com/srinjoywork/Module-5/internal/dto"
	"github.com/srinjoywork/Module-5/internal/service"
	"github.com/srinjoywork/Module-5/internal/validation"
)

type TaskHandler struct {
	svc      *service.TaskService
	validate *validation.Validator
}

func NewTaskHandler(svc *service.TaskService, validate *validation.Validator) *TaskHandler {
	return &TaskHandler{svc: svc, validate: validate}
}

// Create godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.TaskRequest  true  "Task body"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]interface{}
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if errs := h.validate.Task(req); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "errors": errs})
		return
	}
	principal := auth.AccountIDFromContext(c)
	t, err := h.svc.Create(c.Request.Context(), principal, req.Title, req.Subject, req.Priority, req.Completed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create task"})
		return
	}
	c.JSON(http.StatusCreated, taskToResponse(t))
}

// List godoc
// @Summary      List the caller's tasks, paginated
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (1-based)"
// @Success      200   {object}  dto.ListTasksResponse
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	principal := auth.AccountIDFromContext(c)
	list, total, err := h.svc.List(c.Request.Context(), principal, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch tasks"})
		return
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{
		Tasks:      tasksToResponses(list),
		TotalItems: total,
		Page:       page,
	})
}

// GetByID godoc
// @Summary      Get one of the caller's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}
	principal := auth.AccountIDFromContext(c)
	t, err := h.svc.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t))
}

// Update godoc
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Task ID"
// @Param        body  body      dto.TaskRequest  true  "Task body"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]interface{}
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	// Shape first, then the ownership check on the specific resource.
	if errs := h.validate.Task(req); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "errors": errs})
		return
	}
	principal := auth.AccountIDFromContext(c)
	t, err := h.svc.Update(c.Request.Context(), principal, id, req.Title, req.Subject, req.Priority, req.Completed)
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t))
}

// ToggleComplete godoc
// @Summary      Toggle a task's completed flag
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/complete [put]
func (h *TaskHandler) ToggleComplete(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}
	principal := auth.AccountIDFromContext(c)
	t, err := h.svc.ToggleComplete(c.Request.Context(), principal, id)
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t))
}

// Delete godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Task ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}
	principal := auth.AccountIDFromContext(c)
	if err := h.svc.Delete(c.Request.Context(), principal, id); err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

// respondTaskError maps service sentinels to statuses. Existence is checked
// before ownership, so a missing task is 404 regardless of principal.
func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "authorization failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseTaskID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func taskToResponse(t dom.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:        t.ID.String(),
		Title:     t.Title,
		Subject:   t.Subject,
		Priority:  t.Priority,
		Completed: t.Completed,
		CreatorID: t.CreatorID.String(),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func tasksToResponses(list []dom.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, len(list))
	for i := range list {
		out[i] = taskToResponse(list[i])
	}
	return out
}
