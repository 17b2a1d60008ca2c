package service

import (
	"math/rand"

	"timewise_backend/internal/model"
	"timewise_backend/internal/repository"
)

// Catálogos fijos de mensajes motivacionales, uno por tipo de evento.
var taskMessages = []string{
	"¡Tarea completada! Eres una máquina",
	"¡Otro paso más cerca de la grandeza!",
	"¡Crack! Así se hace",
	"¡Boom! Tarea destruida",
	"¡Vas imparable hoy!",
	"¡Productividad nivel dios activado!",
	"¡Check! Otra victoria en tu historial",
}

var goalMessages = []string{
	"¡META CUMPLIDA! Eres una LEYENDA",
	"¡LO LOGRASTE! Este es tu momento",
	"¡ORGULLO MÁXIMO! Completaste una meta épica",
	"¡ERES IMPARABLE! Otra meta conquistada",
	"¡TROFEO DESBLOQUEADO! Eres un campeón",
	"¡WOW! Acabas de hacer historia en tu vida",
	"¡EL MUNDO ES TUYO! Meta lograda con éxito",
}

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
}

func NewAchievementService(achievementRepo *repository.AchievementRepository) *AchievementService {
	return &AchievementService{AchievementRepo: achievementRepo}
}

// PickMessage elige uniformemente al azar del catálogo correspondiente.
func PickMessage(kind model.AchievementKind) string {
	switch kind {
	case model.AchievementGoal:
		return goalMessages[rand.Intn(len(goalMessages))]
	default:
		return taskMessages[rand.Intn(len(taskMessages))]
	}
}

// Record persiste una entrada del feed para el usuario. Se invoca al
// completar una tarea o una meta.
func (s *AchievementService) Record(userID uint, kind model.AchievementKind) error {
	achievement := &model.Achievement{
		UserID:  userID,
		Message: PickMessage(kind),
		Kind:    kind,
	}
	return s.AchievementRepo.Create(achievement)
}

func (s *AchievementService) Feed(userID uint) ([]model.Achievement, error) {
	return s.AchievementRepo.FindByUser(userID)
}
