package repository

import (
	"time"

	"timewise_backend/internal/model"

	"gorm.io/gorm"
)

// TaskFilter reúne los criterios opcionales de /tareas/filtrar. Los punteros
// nil significan "sin filtro".
type TaskFilter struct {
	CategoryID *uint
	Date       *time.Time
	From       *time.Time
	To         *time.Time
	Status     string
	Priority   string
}

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

func (r *TaskRepository) Create(task *model.Task) error {
	return r.DB.Create(task).Error
}

// FindByIDAndUser incorpora la propiedad en la búsqueda: una tarea ajena es
// indistinguible de una inexistente.
func (r *TaskRepository) FindByIDAndUser(id, userID uint) (*model.Task, error) {
	var task model.Task
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	return &task, err
}

func (r *TaskRepository) FindByUser(userID uint, categoryID *uint) ([]model.Task, error) {
	var tasks []model.Task
	query := r.DB.Where("user_id = ?", userID)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	err := query.Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindFiltered(userID uint, f TaskFilter) ([]model.Task, error) {
	query := r.DB.Where("user_id = ?", userID)

	if f.CategoryID != nil {
		query = query.Where("category_id = ?", *f.CategoryID)
	}
	if f.Date != nil {
		query = query.Where("date = ?", *f.Date)
	}
	if f.From != nil {
		query = query.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		query = query.Where("date <= ?", *f.To)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		query = query.Where("priority = ?", f.Priority)
	}

	var tasks []model.Task
	err := query.Order("date ASC, time ASC").Find(&tasks).Error
	return tasks, err
}

// FindCompleted devuelve las tareas completadas del usuario desde la fecha
// dada; con since nil no acota por abajo (período "todo").
func (r *TaskRepository) FindCompleted(userID uint, since *time.Time) ([]model.Task, error) {
	query := r.DB.Where("user_id = ? AND status = ?", userID, model.TaskCompleted)
	if since != nil {
		query = query.Where("date >= ?", *since)
	}
	var tasks []model.Task
	err := query.Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Update(task *model.Task) error {
	return r.DB.Save(task).Error
}

func (r *TaskRepository) Delete(task *model.Task) error {
	return r.DB.Delete(task).Error
}
