package controller

import (
	"strconv"
	"time"

	"timewise_backend/internal/model"
	"timewise_backend/internal/repository"
	"timewise_backend/internal/service"
	"timewise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	TaskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

// TareaResponse serializa la fecha como YYYY-MM-DD; el resto de campos
// sale del modelo.
type TareaResponse struct {
	model.Task
	Date string `json:"fecha"`
}

func taskResponse(t *model.Task) TareaResponse {
	return TareaResponse{Task: *t, Date: t.Date.Format(util.DateFormat)}
}

func taskResponses(tasks []model.Task) []TareaResponse {
	out := make([]TareaResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskResponse(&tasks[i]))
	}
	return out
}

type TaskCreateRequest struct {
	Title           string  `json:"titulo" binding:"required"`
	Description     string  `json:"descripcion"`
	Date            string  `json:"fecha" binding:"required"`
	Time            *string `json:"hora"`
	CategoryID      *uint   `json:"id_categoria"`
	Priority        string  `json:"prioridad"`
	Duration        *int    `json:"duracion_estimada"`
	LabelColor      *string `json:"etiqueta_color"`
	Repeat          string  `json:"repeticion"`
	ReminderMinutes *int    `json:"recordatorio_minutos"`
}

// CreateTask godoc
// @Summary Crear una tarea
// @Tags Tareas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TaskCreateRequest true "Datos de la tarea"
// @Success 201 {object} util.Response{data=TareaResponse}
// @Failure 400 {object} util.Response "Datos inválidos"
// @Router /tareas [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req TaskCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Cuerpo de la petición inválido")
		return
	}

	task, err := c.TaskService.Create(claims.UserID, service.TaskCreate{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		CategoryID:      req.CategoryID,
		Priority:        req.Priority,
		Duration:        req.Duration,
		LabelColor:      req.LabelColor,
		Repeat:          req.Repeat,
		ReminderMinutes: req.ReminderMinutes,
	})
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, taskResponse(task))
}

// ListTasks godoc
// @Summary Listar las tareas del usuario
// @Tags Tareas
// @Produce json
// @Security BearerAuth
// @Param id_categoria query int false "Filtrar por categoría"
// @Success 200 {object} util.Response{data=[]TareaResponse}
// @Router /tareas [get]
func (c *TaskController) ListTasks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var categoryID *uint
	if raw := ctx.Query("id_categoria"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			util.BadRequest(ctx, "id_categoria inválido")
			return
		}
		id := uint(parsed)
		categoryID = &id
	}

	tasks, err := c.TaskService.List(claims.UserID, categoryID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, taskResponses(tasks))
}

// FilterTasks godoc
// @Summary Filtrar tareas por múltiples criterios
// @Description Acepta id_categoria, fecha exacta, rango desde/hasta, estado y prioridad
// @Tags Tareas
// @Produce json
// @Security BearerAuth
// @Param id_categoria query int false "Categoría"
// @Param fecha query string false "Fecha exacta YYYY-MM-DD"
// @Param desde query string false "Inicio del rango YYYY-MM-DD"
// @Param hasta query string false "Fin del rango YYYY-MM-DD"
// @Param estado query string false "Estado de la tarea"
// @Param prioridad query string false "Prioridad"
// @Success 200 {object} util.Response{data=[]TareaResponse}
// @Failure 400 {object} util.Response "Fecha inválida"
// @Router /tareas/filtrar [get]
func (c *TaskController) FilterTasks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var filter repository.TaskFilter

	if raw := ctx.Query("id_categoria"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			util.BadRequest(ctx, "id_categoria inválido")
			return
		}
		id := uint(parsed)
		filter.CategoryID = &id
	}
	for _, q := range []struct {
		name string
		dst  **time.Time
	}{
		{"fecha", &filter.Date},
		{"desde", &filter.From},
		{"hasta", &filter.To},
	} {
		raw := ctx.Query(q.name)
		if raw == "" {
			continue
		}
		parsed, err := time.Parse(util.DateFormat, raw)
		if err != nil {
			util.BadRequest(ctx, "El parámetro "+q.name+" debe tener formato YYYY-MM-DD")
			return
		}
		*q.dst = &parsed
	}
	filter.Status = ctx.Query("estado")
	filter.Priority = ctx.Query("prioridad")

	tasks, err := c.TaskService.Filter(claims.UserID, filter)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, taskResponses(tasks))
}

// GetTask godoc
// @Summary Obtener una tarea propia
// @Tags Tareas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la tarea"
// @Success 200 {object} util.Response{data=TareaResponse}
// @Failure 404 {object} util.Response "Tarea no encontrada"
// @Router /tareas/{id} [get]
func (c *TaskController) GetTask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	task, err := c.TaskService.Get(id, claims.UserID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, taskResponse(task))
}

type TaskUpdateRequest struct {
	Title           *string `json:"titulo"`
	Description     *string `json:"descripcion"`
	Date            *string `json:"fecha"`
	Time            *string `json:"hora"`
	CategoryID      *uint   `json:"id_categoria"`
	Priority        *string `json:"prioridad"`
	Duration        *int    `json:"duracion_estimada"`
	Status          *string `json:"estado"`
	LabelColor      *string `json:"etiqueta_color"`
	Repeat          *string `json:"repeticion"`
	ReminderMinutes *int    `json:"recordatorio_minutos"`
}

// UpdateTask godoc
// @Summary Actualizar parcialmente una tarea
// @Description Solo aplica los campos presentes; completar una tarea genera un logro
// @Tags Tareas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la tarea"
// @Param body body TaskUpdateRequest true "Campos a actualizar"
// @Success 200 {object} util.Response{data=TareaResponse}
// @Failure 404 {object} util.Response "Tarea no encontrada"
// @Router /tareas/{id} [put]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req TaskUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Cuerpo de la petición inválido")
		return
	}

	task, err := c.TaskService.Update(id, claims.UserID, service.TaskUpdate{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		CategoryID:      req.CategoryID,
		Priority:        req.Priority,
		Duration:        req.Duration,
		Status:          req.Status,
		LabelColor:      req.LabelColor,
		Repeat:          req.Repeat,
		ReminderMinutes: req.ReminderMinutes,
	})
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, taskResponse(task))
}

// DeleteTask godoc
// @Summary Eliminar una tarea propia
// @Tags Tareas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la tarea"
// @Success 200 {object} util.Response "Tarea eliminada"
// @Failure 404 {object} util.Response "Tarea no encontrada"
// @Router /tareas/{id} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.TaskService.Delete(id, claims.UserID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"mensaje": "Tarea eliminada correctamente"})
}
