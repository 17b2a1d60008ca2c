package controller

import (
	"timewise_backend/internal/service"
	"timewise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{CategoryService: categoryService}
}

type CategoryCreateRequest struct {
	Name         string `json:"nombre" binding:"required"`
	Description  string `json:"descripcion"`
	DefaultColor string `json:"color_default"`
}

// CreateCategory godoc
// @Summary Crear una categoría
// @Tags Categorías
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CategoryCreateRequest true "Datos de la categoría"
// @Success 201 {object} util.Response{data=model.Category}
// @Failure 400 {object} util.Response "Nombre duplicado o color inválido"
// @Router /categorias [post]
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req CategoryCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Cuerpo de la petición inválido")
		return
	}

	category, err := c.CategoryService.Create(service.CategoryCreate{
		Name:         req.Name,
		Description:  req.Description,
		DefaultColor: req.DefaultColor,
	})
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

// ListCategories godoc
// @Summary Listar todas las categorías
// @Tags Categorías
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /categorias [get]
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	categories, err := c.CategoryService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// GetCategory godoc
// @Summary Obtener una categoría por id
// @Tags Categorías
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la categoría"
// @Success 200 {object} util.Response{data=model.Category}
// @Failure 404 {object} util.Response "Categoría no encontrada"
// @Router /categorias/{id} [get]
func (c *CategoryController) GetCategory(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	category, err := c.CategoryService.Get(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

type CategoryUpdateRequest struct {
	Name         *string `json:"nombre"`
	Description  *string `json:"descripcion"`
	DefaultColor *string `json:"color_default"`
}

// UpdateCategory godoc
// @Summary Actualizar parcialmente una categoría
// @Tags Categorías
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la categoría"
// @Param body body CategoryUpdateRequest true "Campos a actualizar"
// @Success 200 {object} util.Response{data=model.Category}
// @Failure 404 {object} util.Response "Categoría no encontrada"
// @Router /categorias/{id} [put]
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req CategoryUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Cuerpo de la petición inválido")
		return
	}

	category, err := c.CategoryService.Update(id, service.CategoryUpdate{
		Name:         req.Name,
		Description:  req.Description,
		DefaultColor: req.DefaultColor,
	})
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

// DeleteCategory godoc
// @Summary Eliminar una categoría
// @Tags Categorías
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la categoría"
// @Success 200 {object} util.Response "Categoría eliminada"
// @Failure 404 {object} util.Response "Categoría no encontrada"
// @Router /categorias/{id} [delete]
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.CategoryService.Delete(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"mensaje": "Categoría eliminada correctamente"})
}
