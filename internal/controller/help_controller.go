package controller

import (
	"timewise_backend/internal/util"
	"timewise_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HelpController sirve el material de ayuda estático y recibe reportes
// de soporte.
type HelpController struct{}

func NewHelpController() *HelpController {
	return &HelpController{}
}

type Tutorial struct {
	Title   string `json:"titulo"`
	Content string `json:"contenido"`
}

var tutorials = []Tutorial{
	{Title: "Cómo crear una tarea", Content: "Ve a Crear nueva tarea, completa el título y la fecha, y pulsa Guardar."},
	{Title: "Cómo usar el cronómetro", Content: "Selecciona Cronometrar en una tarea para registrar el tiempo invertido."},
	{Title: "Cómo definir una meta", Content: "En la sección Metas indica la descripción, la frecuencia y el objetivo numérico."},
	{Title: "Cómo leer tus estadísticas", Content: "La pantalla de Estadísticas agrupa tus tareas completadas por categoría y período."},
}

// ListTutorials godoc
// @Summary Listar los tutoriales de ayuda
// @Tags Ayuda
// @Produce json
// @Success 200 {object} util.Response{data=[]Tutorial}
// @Router /ayuda [get]
func (c *HelpController) ListTutorials(ctx *gin.Context) {
	util.Success(ctx, tutorials)
}

type SupportRequest struct {
	Message string `json:"mensaje" binding:"required"`
}

// ReportProblem godoc
// @Summary Enviar un mensaje de soporte
// @Tags Ayuda
// @Accept json
// @Produce json
// @Param body body SupportRequest true "Mensaje para el equipo de soporte"
// @Success 200 {object} util.Response "Mensaje recibido"
// @Failure 400 {object} util.Response "Mensaje vacío"
// @Router /ayuda/soporte [post]
func (c *HelpController) ReportProblem(ctx *gin.Context) {
	var req SupportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "El campo mensaje es obligatorio")
		return
	}

	logger.Log.Info("Mensaje de soporte recibido", zap.String("mensaje", req.Message))
	util.Success(ctx, gin.H{"msg": "Sugerencia recibida, gracias!"})
}
