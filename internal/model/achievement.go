package model

import "time"

type AchievementKind string

const (
	AchievementTask AchievementKind = "tarea"
	AchievementGoal AchievementKind = "meta"
)

// Achievement es una entrada del feed motivacional, creada al completar
// una tarea o una meta.
type Achievement struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id_logro"`
	UserID    uint            `gorm:"index;not null" json:"id_usuario"`
	Message   string          `gorm:"type:text;not null" json:"mensaje"`
	Kind      AchievementKind `gorm:"size:20;not null" json:"tipo"`
	CreatedAt time.Time       `json:"fecha_creacion"`
}

func (Achievement) TableName() string {
	return "logros"
}
