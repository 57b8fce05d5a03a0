package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	ThyroidLogs *ThyroidLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		ThyroidLogs: NewThyroidLogRepository(database),
	}
}
