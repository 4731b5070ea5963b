package postgresadapter

import "gorm.io/gorm"

// Migrate creates or updates the votes table. Rows are insert-only; the
// serial key preserves arrival order for the effective-vote fold.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&voteModel{})
}
