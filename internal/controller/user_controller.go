package controller

import (
	"strconv"

	"timewise_backend/internal/model"
	"timewise_backend/internal/service"
	"timewise_backend/internal/util"
	"timewise_backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// UserController expone la administración de usuarios; todas sus rutas
// exigen rol administrador.
type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

func pathID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || !validation.ValidID(id) {
		util.BadRequest(ctx, "Identificador inválido")
		return 0, false
	}
	return uint(id), true
}

// ListUsers godoc
// @Summary Listar todos los usuarios
// @Tags Administración
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Failure 403 {object} util.Response "Requiere rol administrador"
// @Router /admin/usuarios [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.UserService.GetUsers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// GetUser godoc
// @Summary Obtener un usuario por id
// @Tags Administración
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del usuario"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "Usuario no encontrado"
// @Router /admin/usuarios/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	user, err := c.UserService.GetUserByID(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

type AdminCreateUserRequest struct {
	Name     string `json:"nombres" binding:"required"`
	Surname  string `json:"apellidos" binding:"required"`
	Age      int    `json:"edad" binding:"required"`
	Email    string `json:"correo" binding:"required"`
	Password string `json:"contrasena" binding:"required"`
	RoleID   uint   `json:"id_rol" binding:"required"`
}

// CreateUser godoc
// @Summary Crear un usuario con rol explícito
// @Tags Administración
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AdminCreateUserRequest true "Datos del usuario"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "Datos inválidos o correo duplicado"
// @Router /admin/usuarios [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req AdminCreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Cuerpo de la petición inválido")
		return
	}

	if ok, msg := validation.ValidString(req.Name, 2, 50, "Nombres"); !ok {
		util.BadRequest(ctx, msg)
		return
	}
	if ok, msg := validation.ValidString(req.Surname, 2, 50, "Apellidos"); !ok {
		util.BadRequest(ctx, msg)
		return
	}
	if ok, msg := validation.ValidAge(req.Age); !ok {
		util.BadRequest(ctx, msg)
		return
	}
	if !validation.ValidEmail(req.Email) {
		util.BadRequest(ctx, "Correo electrónico inválido")
		return
	}
	if ok, msg := validation.ValidPassword(req.Password); !ok {
		util.BadRequest(ctx, msg)
		return
	}

	user := &model.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Age:      req.Age,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	}
	if err := c.UserService.CreateUser(user); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

type AdminUpdateUserRequest struct {
	Name     *string `json:"nombres"`
	Surname  *string `json:"apellidos"`
	Age      *int    `json:"edad"`
	Email    *string `json:"correo"`
	Password *string `json:"contrasena"`
	RoleID   *uint   `json:"id_rol"`
}

// UpdateUser godoc
// @Summary Actualizar parcialmente un usuario
// @Tags Administración
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del usuario"
// @Param body body AdminUpdateUserRequest true "Campos a actualizar"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "Usuario no encontrado"
// @Router /admin/usuarios/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req AdminUpdateUserRequest
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
	if req.Email != nil && !validation.ValidEmail(*req.Email) {
		util.BadRequest(ctx, "Correo electrónico inválido")
		return
	}
	if req.Password != nil {
		if ok, msg := validation.ValidPassword(*req.Password); !ok {
			util.BadRequest(ctx, msg)
			return
		}
	}

	user, err := c.UserService.UpdateUser(id, service.UserUpdate{
		Name:     req.Name,
		Surname:  req.Surname,
		Age:      req.Age,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// DeleteUser godoc
// @Summary Eliminar un usuario y todos sus datos
// @Tags Administración
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del usuario"
// @Success 200 {object} util.Response "Usuario eliminado"
// @Failure 400 {object} util.Response "No puedes eliminar tu propia cuenta"
// @Failure 404 {object} util.Response "Usuario no encontrado"
// @Router /admin/usuarios/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.UserService.DeleteUser(id, claims.UserID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"mensaje": "Usuario eliminado correctamente"})
}
