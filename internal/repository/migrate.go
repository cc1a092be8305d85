package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this package
// owns. Used by the seed tool and the test suites; production schemas are
// managed by migrations in the deployment repo.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&hotelModel{},
		&tourModel{},
		&excursionModel{},
		&bookingModel{},
	)
}
