package database

import (
	"errors"
	"log"

	"lawfirm-backend/internal/config"
	"lawfirm-backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Case{},
		&models.CaseAssignment{},
		&models.Document{},
		&models.CaseTask{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("Database connected, migrations complete")
}

// IsDuplicateKey reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
