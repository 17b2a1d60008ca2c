package controller

import (
	"errors"
	"net/http"

	"timewise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// statusFor mapea los errores de servicio a códigos HTTP. Los errores de
// validación y los conflictos son 400; las entidades ausentes (o ajenas al
// usuario) son 404; las credenciales malas son 401.
func statusFor(err error) int {
	var vErr *util.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, util.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrTaskNotFound),
		errors.Is(err, util.ErrGoalNotFound),
		errors.Is(err, util.ErrCategoryNotFound),
		errors.Is(err, util.ErrModeNotFound),
		errors.Is(err, util.ErrModeNotActive):
		return http.StatusNotFound
	case errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrDuplicateCategory),
		errors.Is(err, util.ErrResetTokenInvalid),
		errors.Is(err, util.ErrResetTokenExpired),
		errors.Is(err, util.ErrSelfDelete),
		errors.Is(err, util.ErrWrongPassword),
		errors.Is(err, util.ErrPasswordMismatch),
		errors.Is(err, util.ErrPasswordUnchanged),
		errors.Is(err, util.ErrEmailUnchanged),
		errors.Is(err, util.ErrNegativeProgress),
		errors.Is(err, util.ErrInvalidPeriod):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondServiceError(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		util.LogInternalError(ctx, err)
		return
	}
	util.Error(ctx, status, err.Error())
}
