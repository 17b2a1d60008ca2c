package service

import (
	"strings"
	"time"

	"timewise_backend/internal/model"
	"timewise_backend/internal/repository"
	"timewise_backend/internal/util"
	"timewise_backend/internal/validation"
)

// TaskCreate es la entrada de creación ya deserializada; las fechas llegan
// como cadenas y se validan aquí.
type TaskCreate struct {
	Title           string
	Description     string
	Date            string
	Time            *string
	CategoryID      *uint
	Priority        string
	Duration        *int
	LabelColor      *string
	Repeat          string
	ReminderMinutes *int
}

// TaskUpdate es la forma parcial: solo los campos no nil se aplican, y cada
// uno se revalida.
type TaskUpdate struct {
	Title           *string
	Description     *string
	Date            *string
	Time            *string
	CategoryID      *uint
	Priority        *string
	Duration        *int
	Status          *string
	LabelColor      *string
	Repeat          *string
	ReminderMinutes *int
}

type TaskService struct {
	TaskRepo     *repository.TaskRepository
	CategoryRepo *repository.CategoryRepository
	Achievements *AchievementService
}

func NewTaskService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository, achievements *AchievementService) *TaskService {
	return &TaskService{
		TaskRepo:     taskRepo,
		CategoryRepo: categoryRepo,
		Achievements: achievements,
	}
}

func (s *TaskService) Create(userID uint, in TaskCreate) (*model.Task, error) {
	if ok, msg := validation.ValidString(in.Title, 3, 200, "Título"); !ok {
		return nil, util.Invalid(msg)
	}

	date, err := time.Parse(util.DateFormat, in.Date)
	if err != nil {
		return nil, util.Invalid("Fecha inválida, se espera YYYY-MM-DD")
	}
	if date.Before(today()) {
		return nil, util.Invalid("La fecha no puede estar en el pasado")
	}

	if in.Time != nil && !validation.ValidTimeOfDay(*in.Time) {
		return nil, util.Invalid("Hora inválida, se espera HH:MM")
	}

	priority := in.Priority
	if priority == "" {
		priority = string(model.PriorityMedium)
	}
	if !validation.ValidPriority(priority) {
		return nil, util.Invalid("Prioridad debe ser: baja, media o alta")
	}

	repeat := in.Repeat
	if repeat == "" {
		repeat = string(model.RepeatNone)
	}
	if !validation.ValidRepetition(repeat) {
		return nil, util.Invalid("Repetición debe ser: ninguna, diaria, semanal o mensual")
	}

	if in.LabelColor != nil && !validation.ValidHexColor(*in.LabelColor) {
		return nil, util.Invalid("Color de etiqueta inválido")
	}
	if in.Duration != nil && *in.Duration < 0 {
		return nil, util.Invalid("La duración estimada no puede ser negativa")
	}
	if in.ReminderMinutes != nil && *in.ReminderMinutes < 0 {
		return nil, util.Invalid("El recordatorio no puede ser negativo")
	}

	if in.CategoryID != nil {
		// Una categoría inexistente es un dato inválido de la tarea; el 404
		// queda reservado para la propia tarea.
		if _, err := s.CategoryRepo.FindByID(*in.CategoryID); err != nil {
			return nil, util.Invalid("Categoría no encontrada")
		}
	}

	task := &model.Task{
		UserID:          userID,
		CategoryID:      in.CategoryID,
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		Date:            date,
		Time:            in.Time,
		Priority:        model.TaskPriority(priority),
		Duration:        in.Duration,
		Status:          model.TaskPending,
		LabelColor:      in.LabelColor,
		Repeat:          model.Repetition(repeat),
		ReminderMinutes: in.ReminderMinutes,
	}

	if err := s.TaskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) List(userID uint, categoryID *uint) ([]model.Task, error) {
	return s.TaskRepo.FindByUser(userID, categoryID)
}

func (s *TaskService) Filter(userID uint, f repository.TaskFilter) ([]model.Task, error) {
	f.Status = strings.ToLower(f.Status)
	f.Priority = strings.ToLower(f.Priority)
	return s.TaskRepo.FindFiltered(userID, f)
}

func (s *TaskService) Get(id, userID uint) (*model.Task, error) {
	task, err := s.TaskRepo.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, util.ErrTaskNotFound
	}
	return task, nil
}

// Update aplica los campos presentes revalidando cada uno. Una hora
// malformada no se rechaza: se descarta y el campo queda vacío. La
// transición a completada genera un logro.
func (s *TaskService) Update(id, userID uint, in TaskUpdate) (*model.Task, error) {
	task, err := s.TaskRepo.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, util.ErrTaskNotFound
	}

	wasCompleted := task.Status == model.TaskCompleted

	if in.Title != nil {
		if ok, msg := validation.ValidString(*in.Title, 3, 200, "Título"); !ok {
			return nil, util.Invalid(msg)
		}
		task.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Date != nil {
		date, err := time.Parse(util.DateFormat, *in.Date)
		if err != nil {
			return nil, util.Invalid("Fecha inválida, se espera YYYY-MM-DD")
		}
		task.Date = date
	}
	if in.Time != nil {
		if validation.ValidTimeOfDay(*in.Time) {
			task.Time = in.Time
		} else {
			task.Time = nil
		}
	}
	if in.CategoryID != nil {
		if _, err := s.CategoryRepo.FindByID(*in.CategoryID); err != nil {
			return nil, util.Invalid("Categoría no encontrada")
		}
		task.CategoryID = in.CategoryID
	}
	if in.Priority != nil {
		if !validation.ValidPriority(*in.Priority) {
			return nil, util.Invalid("Prioridad debe ser: baja, media o alta")
		}
		task.Priority = model.TaskPriority(*in.Priority)
	}
	if in.Duration != nil {
		if *in.Duration < 0 {
			return nil, util.Invalid("La duración estimada no puede ser negativa")
		}
		task.Duration = in.Duration
	}
	if in.Status != nil {
		if !validation.ValidTaskStatus(*in.Status) {
			return nil, util.Invalid("Estado debe ser: pendiente, en_progreso, completada o pausada")
		}
		task.Status = model.TaskStatus(*in.Status)
	}
	if in.LabelColor != nil {
		if !validation.ValidHexColor(*in.LabelColor) {
			return nil, util.Invalid("Color de etiqueta inválido")
		}
		task.LabelColor = in.LabelColor
	}
	if in.Repeat != nil {
		if !validation.ValidRepetition(*in.Repeat) {
			return nil, util.Invalid("Repetición debe ser: ninguna, diaria, semanal o mensual")
		}
		task.Repeat = model.Repetition(*in.Repeat)
	}
	if in.ReminderMinutes != nil {
		if *in.ReminderMinutes < 0 {
			return nil, util.Invalid("El recordatorio no puede ser negativo")
		}
		task.ReminderMinutes = in.ReminderMinutes
	}

	if err := s.TaskRepo.Update(task); err != nil {
		return nil, err
	}

	if !wasCompleted && task.Status == model.TaskCompleted {
		if err := s.Achievements.Record(userID, model.AchievementTask); err != nil {
			return nil, err
		}
	}

	return task, nil
}

func (s *TaskService) Delete(id, userID uint) error {
	task, err := s.TaskRepo.FindByIDAndUser(id, userID)
	if err != nil {
		return util.ErrTaskNotFound
	}
	return s.TaskRepo.Delete(task)
}

// today devuelve la fecha local a medianoche, para comparar solo fechas.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
