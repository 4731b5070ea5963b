package postgresadapter

import "gorm.io/gorm"

// Migrate creates or updates the channels and posts tables, including the
// unique index on channel topic.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&channelModel{}, &postModel{})
}
