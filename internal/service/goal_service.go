package service

import (
	"strings"
	"time"

	"timewise_backend/internal/model"
	"timewise_backend/internal/repository"
	"timewise_backend/internal/util"
	"timewise_backend/internal/validation"
)

type GoalCreate struct {
	Description string
	Frequency   string
	Target      int
}

type GoalUpdate struct {
	Description *string
	Frequency   *string
	Target      *int
}

type GoalService struct {
	GoalRepo     *repository.GoalRepository
	Achievements *AchievementService
}

func NewGoalService(goalRepo *repository.GoalRepository, achievements *AchievementService) *GoalService {
	return &GoalService{
		GoalRepo:     goalRepo,
		Achievements: achievements,
	}
}

func (s *GoalService) Create(userID uint, in GoalCreate) (*model.Goal, error) {
	if ok, msg := validation.ValidString(in.Description, 3, 500, "Descripción"); !ok {
		return nil, util.Invalid(msg)
	}

	frequency := strings.ToLower(strings.TrimSpace(in.Frequency))
	if !validation.ValidFrequency(frequency) {
		return nil, util.Invalid("Frecuencia debe ser: diaria, semanal o mensual")
	}
	if in.Target <= 0 {
		return nil, util.Invalid("El objetivo debe ser mayor que cero")
	}

	goal := &model.Goal{
		UserID:      userID,
		Description: strings.TrimSpace(in.Description),
		Frequency:   model.GoalFrequency(frequency),
		Target:      in.Target,
		Progress:    0,
		StartDate:   time.Now(),
		Completed:   false,
	}

	if err := s.GoalRepo.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) List(userID uint) ([]model.Goal, error) {
	return s.GoalRepo.FindByUser(userID)
}

func (s *GoalService) Get(id, userID uint) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, util.ErrGoalNotFound
	}
	return goal, nil
}

func (s *GoalService) Update(id, userID uint, in GoalUpdate) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, util.ErrGoalNotFound
	}

	if in.Description != nil {
		if ok, msg := validation.ValidString(*in.Description, 3, 500, "Descripción"); !ok {
			return nil, util.Invalid(msg)
		}
		goal.Description = strings.TrimSpace(*in.Description)
	}
	if in.Frequency != nil {
		frequency := strings.ToLower(strings.TrimSpace(*in.Frequency))
		if !validation.ValidFrequency(frequency) {
			return nil, util.Invalid("Frecuencia debe ser: diaria, semanal o mensual")
		}
		goal.Frequency = model.GoalFrequency(frequency)
	}
	if in.Target != nil {
		if *in.Target <= 0 {
			return nil, util.Invalid("El objetivo debe ser mayor que cero")
		}
		goal.Target = *in.Target
		// El objetivo pudo bajar o subir: la bandera se recalcula.
		goal.Completed = goal.Progress >= goal.Target
	}

	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// UpdateProgress fija el progreso absoluto. La bandera completada se
// recalcula en cada llamada y puede volver a false; solo la transición
// false→true genera un logro.
func (s *GoalService) UpdateProgress(id, userID uint, progress int) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, util.ErrGoalNotFound
	}
	if progress < 0 {
		return nil, util.ErrNegativeProgress
	}

	wasCompleted := goal.Completed
	goal.Progress = progress
	goal.Completed = progress >= goal.Target

	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}

	if !wasCompleted && goal.Completed {
		if err := s.Achievements.Record(userID, model.AchievementGoal); err != nil {
			return nil, err
		}
	}

	return goal, nil
}

func (s *GoalService) Delete(id, userID uint) error {
	goal, err := s.GoalRepo.FindByIDAndUser(id, userID)
	if err != nil {
		return util.ErrGoalNotFound
	}
	return s.GoalRepo.Delete(goal)
}
