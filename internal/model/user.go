package model

import (
	"time"
)

// swagger:model User
type User struct {
	BaseModel
	Name             string     `gorm:"size:100;not null" json:"nombres"`
	Surname          string     `gorm:"size:100;not null" json:"apellidos"`
	Age              int        `gorm:"not null" json:"edad"`
	Email            string     `gorm:"size:100;unique;not null" json:"correo"`
	Password         string     `gorm:"size:100;not null" json:"-"`
	RoleID           uint       `gorm:"default:2" json:"id_rol"`
	Avatar           string     `gorm:"size:255" json:"foto_perfil"`
	LastLogin        *time.Time `json:"ultimo_login"`
	ResetToken       *string    `gorm:"size:32" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
}

func (User) TableName() string {
	return "usuarios"
}
