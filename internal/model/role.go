package model

const (
	RoleAdmin    uint = 1
	RoleStandard uint = 2
)

// Rol de usuario: administrador (1) o estándar (2).
type Role struct {
	ID          uint   `gorm:"primaryKey" json:"id_rol"`
	Name        string `gorm:"size:50;unique;not null" json:"nombre_rol"`
	Description string `gorm:"type:text" json:"descripcion"`
}

func (Role) TableName() string {
	return "roles"
}
