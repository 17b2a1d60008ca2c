package controller

import (
	"strings"

	"timewise_backend/internal/service"
	"timewise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	StatisticsService *service.StatisticsService
}

func NewStatisticsController(statisticsService *service.StatisticsService) *StatisticsController {
	return &StatisticsController{StatisticsService: statisticsService}
}

func periodParam(ctx *gin.Context) string {
	return strings.ToLower(strings.TrimSpace(ctx.DefaultQuery("periodo", "semanal")))
}

// GetStatistics godoc
// @Summary Resumen de productividad por categoría
// @Description Agrupa las tareas completadas del período por categoría
// @Tags Estadísticas
// @Produce json
// @Security BearerAuth
// @Param periodo query string false "semanal, mensual, anual o todo" default(semanal)
// @Success 200 {object} util.Response{data=service.StatsSummary}
// @Failure 400 {object} util.Response "Período inválido"
// @Router /estadisticas [get]
func (c *StatisticsController) GetStatistics(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.StatisticsService.Summary(claims.UserID, periodParam(ctx))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// GetChart godoc
// @Summary Series para graficar las estadísticas
// @Tags Estadísticas
// @Produce json
// @Security BearerAuth
// @Param periodo query string false "semanal, mensual, anual o todo" default(semanal)
// @Success 200 {object} util.Response{data=service.ChartData}
// @Failure 400 {object} util.Response "Período inválido"
// @Router /estadisticas/grafico [get]
func (c *StatisticsController) GetChart(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	chart, err := c.StatisticsService.Chart(claims.UserID, periodParam(ctx))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, chart)
}
