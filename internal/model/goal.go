package model

import "time"

type GoalFrequency string

const (
	FrequencyDaily   GoalFrequency = "diaria"
	FrequencyWeekly  GoalFrequency = "semanal"
	FrequencyMonthly GoalFrequency = "mensual"
)

type Goal struct {
	BaseModel
	UserID      uint          `gorm:"index;not null" json:"id_usuario"`
	Description string        `gorm:"type:text;not null" json:"descripcion"`
	Frequency   GoalFrequency `gorm:"size:10;not null" json:"frecuencia"`
	Target      int           `gorm:"not null" json:"objetivo"`
	Progress    int           `gorm:"default:0" json:"progreso"`
	StartDate   time.Time     `gorm:"type:date" json:"-"`
	Completed   bool          `gorm:"default:false" json:"completada"`
}

func (Goal) TableName() string {
	return "metas"
}
