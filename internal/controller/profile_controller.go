package controller

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"timewise_backend/internal/service"
	"timewise_backend/internal/util"
	"timewise_backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileController struct {
	UserService    *service.UserService
	StorageService *service.StorageService
}

func NewProfileController(userService *service.UserService, storageService *service.StorageService) *ProfileController {
	return &ProfileController{
		UserService:    userService,
		StorageService: storageService,
	}
}

// GetProfile godoc
// @Summary Obtener el perfil propio
// @Tags Perfil
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Router /perfil [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetUserByID(claims.UserID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

type ProfileUpdateRequest struct {
	Name    *string `json:"nombres"`
	Surname *string `json:"apellidos"`
	Age     *int    `json:"edad"`
}

// UpdateProfile godoc
// @Summary Actualizar los datos del perfil propio
// @Tags Perfil
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ProfileUpdateRequest true "Campos a actualizar"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "Datos inválidos"
// @Router /perfil [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Cuerpo de la petición inválido")
		return
	}

	if req.Name != nil {
		if ok, msg := validation.ValidString(*req.Name, 2, 50, "Nombres"); !ok {
			util.BadRequest(ctx, msg)
			return
		}
	}
	if req.Surname != nil {
		if ok, msg := validation.ValidString(*req.Surname, 2, 50, "Apellidos"); !ok {
			util.BadRequest(ctx, msg)
			return
		}
	}
	if req.Age != nil {
		if ok, msg := validation.ValidAge(*req.Age); !ok {
			util.BadRequest(ctx, msg)
			return
		}
	}

	user, err := c.UserService.UpdateUser(claims.UserID, service.UserUpdate{
		Name:    req.Name,
		Surname: req.Surname,
		Age:     req.Age,
	})
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

type ChangePasswordRequest struct {
	Current string `json:"contrasena_actual" binding:"required"`
	New     string `json:"nueva_contrasena" binding:"required"`
	Confirm string `json:"confirmar_contrasena" binding:"required"`
}

// ChangePassword godoc
// @Summary Cambiar la contraseña propia
// @Tags Perfil
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ChangePasswordRequest true "Contraseña actual y nueva"
// @Success 200 {object} util.Response "Contraseña actualizada"
// @Failure 400 {object} util.Response "Contraseña actual incorrecta o nueva inválida"
// @Router /perfil/cambiar-contrasena [put]
func (c *ProfileController) ChangePassword(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Cuerpo de la petición inválido")
		return
	}

	if ok, msg := validation.ValidPassword(req.New); !ok {
		util.BadRequest(ctx, msg)
		return
	}

	if err := c.UserService.ChangePassword(claims.UserID, req.Current, req.New, req.Confirm); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"mensaje": "Contraseña actualizada correctamente"})
}

type ChangeEmailRequest struct {
	NewEmail string `json:"nuevo_correo" binding:"required"`
	Password string `json:"contrasena" binding:"required"`
}

// ChangeEmail godoc
// @Summary Cambiar el correo propio
// @Tags Perfil
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ChangeEmailRequest true "Nuevo correo y contraseña actual"
// @Success 200 {object} util.Response "Correo actualizado"
// @Failure 400 {object} util.Response "Correo inválido, duplicado o contraseña incorrecta"
// @Router /perfil/cambiar-correo [put]
func (c *ProfileController) ChangeEmail(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChangeEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Cuerpo de la petición inválido")
		return
	}

	if !validation.ValidEmail(req.NewEmail) {
		util.BadRequest(ctx, "Correo electrónico inválido")
		return
	}

	if err := c.UserService.ChangeEmail(claims.UserID, req.NewEmail, req.Password); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"mensaje": "Correo actualizado correctamente"})
}

// UploadPhoto godoc
// @Summary Subir la foto de perfil
// @Description Acepta imágenes jpeg, png, gif o webp de hasta 5MB
// @Tags Perfil
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param foto formData file true "Imagen de perfil"
// @Success 200 {object} util.Response{data=object} "Ruta de la foto"
// @Failure 400 {object} util.Response "Archivo demasiado grande o tipo no permitido"
// @Router /perfil/foto [post]
func (c *ProfileController) UploadPhoto(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("foto")
	if err != nil {
		util.BadRequest(ctx, "El campo foto es obligatorio")
		return
	}
	if fileHeader.Size > util.MaxAvatarSize {
		util.BadRequest(ctx, "La imagen no puede superar los 5MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	// El archivo se carga completo en memoria; el límite de 5MB lo acota.
	content, err := io.ReadAll(io.LimitReader(file, util.MaxAvatarSize+1))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if int64(len(content)) > util.MaxAvatarSize {
		util.BadRequest(ctx, "La imagen no puede superar los 5MB")
		return
	}

	contentType := http.DetectContentType(content)
	if !allowedImage(contentType) {
		util.BadRequest(ctx, "Tipo de imagen no permitido; use jpeg, png, gif o webp")
		return
	}

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = extensionFor(contentType)
	}
	filename := uuid.New().String() + strings.ToLower(ext)

	path, err := c.StorageService.SaveBuffered(ctx.Request.Context(), filename, content, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if err := c.UserService.UpdateAvatar(claims.UserID, path); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"foto_perfil": path})
}

func allowedImage(contentType string) bool {
	for _, t := range util.AllowedImageTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ""
}
