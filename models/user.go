package models

import (
	"Foodgram/pkg/snowflake"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Username  string    `gorm:"column:username;size:150;not null;uniqueIndex:uk_users_username" json:"username"`
	Email     string    `gorm:"column:email;size:254;not null;uniqueIndex:uk_users_email" json:"email"`
	FirstName string    `gorm:"column:first_name;size:150" json:"first_name"`
	LastName  string    `gorm:"column:last_name;size:150" json:"last_name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == 0 {
		u.ID = snowflake.GenID()
	}
	return nil
}
