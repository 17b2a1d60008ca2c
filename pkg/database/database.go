package database

import (
	"log"
	"os"
	"path/filepath"

	"timewise_backend/internal/config"
	"timewise_backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB abre (o crea) el archivo sqlite y deja el esquema al día. Un
// archivo existente nunca se sobreescribe: AutoMigrate solo agrega lo que
// falte y las semillas están protegidas por conteos.
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dir := filepath.Dir(cfg.Path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(cfg.Path); os.IsNotExist(err) {
		log.Printf("Creating database file: %s", cfg.Path)
	} else {
		log.Printf("Database file exists: %s (data preserved)", cfg.Path)
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path+"?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Category{},
		&model.Task{},
		&model.Goal{},
		&model.Mode{},
		&model.UserMode{},
		&model.Achievement{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seed(db); err != nil {
		return nil, err
	}

	return db, nil
}

func seed(db *gorm.DB) error {
	var roleCount int64
	db.Model(&model.Role{}).Count(&roleCount)
	if roleCount == 0 {
		roles := []model.Role{
			{ID: model.RoleAdmin, Name: "administrador", Description: "Acceso completo a la gestión de usuarios"},
			{ID: model.RoleStandard, Name: "estandar", Description: "Usuario estándar de la aplicación"},
		}
		for _, r := range roles {
			if err := db.Create(&r).Error; err != nil {
				return err
			}
		}
	}

	var modeCount int64
	db.Model(&model.Mode{}).Count(&modeCount)
	if modeCount == 0 {
		modes := []model.Mode{
			{Name: "Enfoque", Description: "Silencia distracciones y prioriza tareas de alta prioridad"},
			{Name: "Descanso", Description: "Pausa recordatorios durante los descansos"},
			{Name: "Estudio", Description: "Agrupa tareas académicas y sesiones de lectura"},
			{Name: "Trabajo", Description: "Modo para la jornada laboral"},
		}
		for _, m := range modes {
			if err := db.Create(&m).Error; err != nil {
				return err
			}
		}
	}

	var catCount int64
	db.Model(&model.Category{}).Count(&catCount)
	if catCount == 0 {
		categories := []model.Category{
			{Name: "Trabajo", Description: "Tareas laborales", DefaultColor: "#3498db"},
			{Name: "Estudio", Description: "Tareas académicas", DefaultColor: "#9b59b6"},
			{Name: "Hogar", Description: "Tareas domésticas", DefaultColor: "#2ecc71"},
			{Name: "Salud", Description: "Ejercicio y bienestar", DefaultColor: "#e74c3c"},
		}
		for _, c := range categories {
			if err := db.Create(&c).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
