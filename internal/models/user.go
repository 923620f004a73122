package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleWriter UserRole = "writer"
	RoleGuest  UserRole = "guest"
)

type User struct {
	ID               string    `gorm:"primarykey;type:varchar(36)" json:"id"`
	FirstName        string    `gorm:"type:varchar(50);not null" json:"firstName"`
	LastName         string    `gorm:"type:varchar(60);not null" json:"lastName"`
	FullName         string    `gorm:"type:varchar(120)" json:"fullName"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Role             UserRole  `gorm:"type:varchar(20)" json:"role,omitempty"`
	Age              int       `json:"age"`
	NumberOfArticles int       `gorm:"not null;default:0" json:"numberOfArticles"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	Articles []Article     `gorm:"foreignKey:OwnerID" json:"articles,omitempty"`
	Likes    []ArticleLike `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate assigns a UUID when the caller did not supply an ID.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave keeps the derived fields in line with their sources:
// FullName tracks FirstName/LastName, Email is stored lowercased, and
// a negative Age is reset to 1.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.FullName = u.FirstName + " " + u.LastName
	u.Email = strings.ToLower(u.Email)
	if u.Age < 0 {
		u.Age = 1
	}
	return nil
}
