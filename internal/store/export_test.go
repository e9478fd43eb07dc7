package store

import "gorm.io/gorm"

// SharedTestDB exposes the shared test database to store_test
func SharedTestDB() *gorm.DB {
	return testDB
}
