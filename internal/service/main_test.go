package service

import (
	"testing"

	"timewise_backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB abre una base en memoria con el esquema migrado. Se limita a
// una conexión: cada conexión de :memory: vería una base distinta.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite en memoria: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("obtener *sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Category{},
		&model.Task{},
		&model.Goal{},
		&model.Mode{},
		&model.UserMode{},
		&model.Achievement{},
	); err != nil {
		t.Fatalf("migrar esquema: %v", err)
	}
	return db
}
