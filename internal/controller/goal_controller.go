package controller

import (
	"timewise_backend/internal/model"
	"timewise_backend/internal/service"
	"timewise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

type MetaResponse struct {
	model.Goal
	StartDate string `json:"fecha_inicio"`
}

func goalResponse(g *model.Goal) MetaResponse {
	return MetaResponse{Goal: *g, StartDate: g.StartDate.Format(util.DateFormat)}
}

func goalResponses(goals []model.Goal) []MetaResponse {
	out := make([]MetaResponse, 0, len(goals))
	for i := range goals {
		out = append(out, goalResponse(&goals[i]))
	}
	return out
}

type GoalCreateRequest struct {
	Description string `json:"descripcion" binding:"required"`
	Frequency   string `json:"frecuencia" binding:"required"`
	Target      int    `json:"objetivo" binding:"required"`
}

// CreateGoal godoc
// @Summary Crear una meta
// @Tags Metas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GoalCreateRequest true "Datos de la meta"
// @Success 201 {object} util.Response{data=MetaResponse}
// @Failure 400 {object} util.Response "Datos inválidos"
// @Router /metas [post]
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req GoalCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Cuerpo de la petición inválido")
		return
	}

	goal, err := c.GoalService.Create(claims.UserID, service.GoalCreate{
		Description: req.Description,
		Frequency:   req.Frequency,
		Target:      req.Target,
	})
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, goalResponse(goal))
}

// ListGoals godoc
// @Summary Listar las metas del usuario
// @Tags Metas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]MetaResponse}
// @Router /metas [get]
func (c *GoalController) ListGoals(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	goals, err := c.GoalService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, goalResponses(goals))
}

// GetGoal godoc
// @Summary Obtener una meta propia
// @Tags Metas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la meta"
// @Success 200 {object} util.Response{data=MetaResponse}
// @Failure 404 {object} util.Response "Meta no encontrada"
// @Router /metas/{id} [get]
func (c *GoalController) GetGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	goal, err := c.GoalService.Get(id, claims.UserID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, goalResponse(goal))
}

type GoalUpdateRequest struct {
	Description *string `json:"descripcion"`
	Frequency   *string `json:"frecuencia"`
	Target      *int    `json:"objetivo"`
}

// UpdateGoal godoc
// @Summary Actualizar parcialmente una meta
// @Tags Metas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la meta"
// @Param body body GoalUpdateRequest true "Campos a actualizar"
// @Success 200 {object} util.Response{data=MetaResponse}
// @Failure 404 {object} util.Response "Meta no encontrada"
// @Router /metas/{id} [put]
func (c *GoalController) UpdateGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req GoalUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Cuerpo de la petición inválido")
		return
	}

	goal, err := c.GoalService.Update(id, claims.UserID, service.GoalUpdate{
		Description: req.Description,
		Frequency:   req.Frequency,
		Target:      req.Target,
	})
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, goalResponse(goal))
}

type GoalProgressRequest struct {
	Progress *int `json:"progreso" binding:"required"`
}

// UpdateProgress godoc
// @Summary Actualizar el progreso de una meta
// @Description La bandera completada se recalcula; al completarse se genera un logro
// @Tags Metas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la meta"
// @Param body body GoalProgressRequest true "Progreso absoluto"
// @Success 200 {object} util.Response{data=MetaResponse}
// @Failure 400 {object} util.Response "Progreso negativo"
// @Failure 404 {object} util.Response "Meta no encontrada"
// @Router /metas/{id}/progreso [put]
func (c *GoalController) UpdateProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req GoalProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Progress == nil {
		util.BadRequest(ctx, "El campo progreso es obligatorio")
		return
	}

	goal, err := c.GoalService.UpdateProgress(id, claims.UserID, *req.Progress)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, goalResponse(goal))
}

// DeleteGoal godoc
// @Summary Eliminar una meta propia
// @Tags Metas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la meta"
// @Success 200 {object} util.Response "Meta eliminada"
// @Failure 404 {object} util.Response "Meta no encontrada"
// @Router /metas/{id} [delete]
func (c *GoalController) DeleteGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.GoalService.Delete(id, claims.UserID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"mensaje": "Meta eliminada correctamente"})
}
