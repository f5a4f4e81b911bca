package models

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string `gorm:"not null"`
	Nombre       string `gorm:"size:255"`
}

func (User) TableName() string { return "usuarios" }
