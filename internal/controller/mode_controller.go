package controller

import (
	"timewise_backend/internal/service"
	"timewise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ModeController struct {
	ModeService *service.ModeService
}

func NewModeController(modeService *service.ModeService) *ModeController {
	return &ModeController{ModeService: modeService}
}

// ListModes godoc
// @Summary Listar los modos disponibles
// @Tags Modos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Mode}
// @Router /modos [get]
func (c *ModeController) ListModes(ctx *gin.Context) {
	modes, err := c.ModeService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, modes)
}

// ListActiveModes godoc
// @Summary Listar los modos activos del usuario
// @Tags Modos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Mode}
// @Router /modos/mis-modos [get]
func (c *ModeController) ListActiveModes(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	modes, err := c.ModeService.ActiveForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, modes)
}

type ModeActivateRequest struct {
	ModeID uint `json:"id_modo" binding:"required"`
}

// ActivateMode godoc
// @Summary Activar un modo para el usuario
// @Description Activar un modo ya activo no crea duplicados
// @Tags Modos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ModeActivateRequest true "Modo a activar"
// @Success 200 {object} util.Response{data=model.Mode}
// @Failure 404 {object} util.Response "Modo no encontrado"
// @Router /modos/activar [post]
func (c *ModeController) ActivateMode(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ModeActivateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "El campo id_modo es obligatorio")
		return
	}

	mode, err := c.ModeService.Activate(claims.UserID, req.ModeID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, mode)
}

// DeactivateMode godoc
// @Summary Desactivar un modo del usuario
// @Tags Modos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del modo"
// @Success 200 {object} util.Response "Modo desactivado"
// @Failure 404 {object} util.Response "Modo no encontrado o no activo"
// @Router /modos/desactivar/{id} [delete]
func (c *ModeController) DeactivateMode(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.ModeService.Deactivate(claims.UserID, id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"mensaje": "Modo desactivado correctamente"})
}
