package models

import "time"

type User struct {
	ID           uint   `gorm:"column:id_user;primaryKey;autoIncrement"`
	FullName     string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255"`
	RoleID       *uint  `gorm:"column:id_role;index"`
	Role         *Role  `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) Key() uint { return u.ID }
