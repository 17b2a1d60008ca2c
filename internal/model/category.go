package model

// Category es dato de referencia compartido entre todos los usuarios.
type Category struct {
	BaseModel
	Name         string `gorm:"size:100;unique;not null" json:"nombre"`
	Description  string `gorm:"type:text" json:"descripcion"`
	DefaultColor string `gorm:"size:7" json:"color_default"`
}

func (Category) TableName() string {
	return "categorias"
}

// Cubeta sintética para agrupar tareas sin categoría en las estadísticas.
var UncategorizedCategory = Category{
	BaseModel:    BaseModel{ID: 0},
	Name:         "Sin categoría",
	DefaultColor: "#95a5a6",
}
