package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is a registered owner of accounts, income sources and subcategory
// selections.
type User struct {
	DefaultModel
	Username string `gorm:"uniqueIndex"`
	Password string `json:"-"` // Hashed by the caller, never stored in plain text
}

// BeforeSave trims whitespace from the username.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	return nil
}
