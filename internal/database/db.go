package database

import (
	"log"

	"github.com/SergioReyes42/SistemaContable/internal/config"
	"github.com/SergioReyes42/SistemaContable/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBDSN)
	case "sqlite", "":
		dial = sqlite.Open(cfg.DBDSN)
	default:
		log.Fatalf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	var err error
	DB, err = gorm.Open(dial, &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}

	// migraciones
	if err := DB.AutoMigrate(&models.User{}, &models.Movement{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	ensureAdmin(cfg.AdminUsername, cfg.AdminPassword)
}

// ensureAdmin crea la cuenta por defecto si todavía no existe ningún usuario.
func ensureAdmin(username, password string) {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("failed to check users: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Nombre:       "Administrador",
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}
	log.Printf("created default admin user: %s", username)
}
