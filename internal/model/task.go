package model

import (
	"time"
)

type TaskStatus string

const (
	TaskPending   TaskStatus = "pendiente"
	TaskProgress  TaskStatus = "en_progreso"
	TaskCompleted TaskStatus = "completada"
	TaskPaused    TaskStatus = "pausada"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "baja"
	PriorityMedium TaskPriority = "media"
	PriorityHigh   TaskPriority = "alta"
)

type Repetition string

const (
	RepeatNone    Repetition = "ninguna"
	RepeatDaily   Repetition = "diaria"
	RepeatWeekly  Repetition = "semanal"
	RepeatMonthly Repetition = "mensual"
)

type Task struct {
	BaseModel
	UserID          uint         `gorm:"index;not null" json:"id_usuario"`
	CategoryID      *uint        `gorm:"index" json:"id_categoria"`
	Title           string       `gorm:"size:200;not null" json:"titulo"`
	Description     string       `gorm:"type:text" json:"descripcion"`
	Date            time.Time    `gorm:"type:date;index" json:"-"`
	Time            *string      `gorm:"size:5" json:"hora"`
	Priority        TaskPriority `gorm:"size:10;default:'media'" json:"prioridad"`
	Duration        *int         `json:"duracion_estimada"`
	Status          TaskStatus   `gorm:"size:15;default:'pendiente';index" json:"estado"`
	LabelColor      *string      `gorm:"size:7" json:"etiqueta_color"`
	Repeat          Repetition   `gorm:"size:10;default:'ninguna'" json:"repeticion"`
	ReminderMinutes *int         `json:"recordatorio_minutos"`
}

func (Task) TableName() string {
	return "tareas"
}
