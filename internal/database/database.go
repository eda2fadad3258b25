package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" database/sql driver
	_ "modernc.org/sqlite"

	"makeupstudio/internal/domain"
)

// Connect picks the driver from the DSN: postgres URLs go to PostgreSQL,
// anything else is treated as a SQLite file path (cgo-free driver).
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Service{},
		&domain.TransportCost{},
		&domain.Appointment{},
		&domain.AppointmentItem{},
		&domain.BlockedSlot{},
		&domain.Review{},
		&domain.ReviewInvite{},
		&domain.Complaint{},
		&domain.Page{},
	)
}
