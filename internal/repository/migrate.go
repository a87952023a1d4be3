package repository

import (
	"github.com/megareality/estate/internal/models"
	"gorm.io/gorm"
)

// Models returns every table that needs migration.
func Models() []interface{} {
	return []interface{}{
		&models.Admin{},
		&models.Property{},
		&models.Agent{},
		&models.Builder{},
		&models.Project{},
		&models.Inquiry{},
		&models.Notification{},
		&models.HomeContentSection{},
	}
}

// AutoMigrate creates or alters the schema for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addNotificationFeedIndex,
	}
	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}
	return nil
}

// addNotificationFeedIndex backs the newest-first notification feed.
func addNotificationFeedIndex(db *gorm.DB) error {
	return db.Exec(`CREATE INDEX IF NOT EXISTS idx_notifications_feed ON notifications (created_at DESC, id DESC)`).Error
}
