package model

import "time"

// Mode es un modo de trabajo predefinido (enfoque, descanso, etc.),
// administrado globalmente y activable por usuario.
type Mode struct {
	BaseModel
	Name        string `gorm:"size:100;unique;not null" json:"nombre"`
	Description string `gorm:"type:text" json:"descripcion"`
}

func (Mode) TableName() string {
	return "modos"
}

// UserMode vincula un usuario con un modo activado.
type UserMode struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id_usuario_modo"`
	UserID      uint      `gorm:"index;not null" json:"id_usuario"`
	ModeID      uint      `gorm:"index;not null" json:"id_modo"`
	ActivatedAt time.Time `gorm:"autoCreateTime" json:"fecha_activacion"`
}

func (UserMode) TableName() string {
	return "usuario_modos"
}
