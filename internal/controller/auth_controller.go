package controller

import (
	"errors"
	"net/http"
	"strings"

	"timewise_backend/internal/model"
	"timewise_backend/internal/service"
	"timewise_backend/internal/util"
	"timewise_backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// RegisterRequest es el cuerpo de registro público.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"nombres" binding:"required"`
	Surname  string `json:"apellidos" binding:"required"`
	Age      int    `json:"edad" binding:"required"`
	Email    string `json:"correo" binding:"required"`
	Password string `json:"contrasena" binding:"required"`
}

// Register godoc
// @Summary Registrar un nuevo usuario
// @Description Crea una cuenta con rol estándar
// @Tags Autenticación
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Datos de registro"
// @Success 201 {object} util.Response{data=model.User} "Usuario creado"
// @Failure 400 {object} util.Response "Datos inválidos o correo duplicado"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
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
		Name:     strings.TrimSpace(req.Name),
		Surname:  strings.TrimSpace(req.Surname),
		Age:      req.Age,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := c.AuthService.Register(user); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, user)
}

// Login godoc
// @Summary Iniciar sesión
// @Description Autentica con formulario username/password y devuelve un JWT
// @Tags Autenticación
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Correo electrónico"
// @Param password formData string true "Contraseña"
// @Success 200 {object} util.Response{data=object} "Token emitido"
// @Failure 401 {object} util.Response "Credenciales inválidas"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	username := ctx.PostForm("username")
	password := ctx.PostForm("password")
	if username == "" || password == "" {
		util.BadRequest(ctx, "username y password son obligatorios")
		return
	}

	token, err := c.AuthService.Login(username, password)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

type RecoverPasswordRequest struct {
	Email string `json:"correo" binding:"required"`
}

// RecoverPassword godoc
// @Summary Solicitar recuperación de contraseña
// @Description Genera un token temporal y lo envía por correo
// @Tags Autenticación
// @Accept json
// @Produce json
// @Param body body RecoverPasswordRequest true "Correo registrado"
// @Success 200 {object} util.Response "Correo enviado"
// @Failure 404 {object} util.Response "Usuario no encontrado"
// @Failure 500 {object} util.Response "Fallo del servidor de correo"
// @Router /auth/recover-password [post]
func (c *AuthController) RecoverPassword(ctx *gin.Context) {
	var req RecoverPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Cuerpo de la petición inválido")
		return
	}

	if err := c.AuthService.RecoverPassword(req.Email); err != nil {
		// El fallo del SMTP se reporta con su causa, no como 500 genérico.
		if errors.Is(err, util.ErrMailSend) {
			util.Error(ctx, http.StatusInternalServerError, err.Error())
			return
		}
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"mensaje": "Se ha enviado un correo con las instrucciones"})
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"nueva_contrasena" binding:"required"`
}

// ResetPassword godoc
// @Summary Restablecer la contraseña con un token
// @Tags Autenticación
// @Accept json
// @Produce json
// @Param body body ResetPasswordRequest true "Token y nueva contraseña"
// @Success 200 {object} util.Response "Contraseña actualizada"
// @Failure 400 {object} util.Response "Token inválido o expirado"
// @Router /auth/reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Cuerpo de la petición inválido")
		return
	}

	if err := c.AuthService.ResetPassword(req.Token, req.NewPassword); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"mensaje": "Contraseña actualizada correctamente"})
}
