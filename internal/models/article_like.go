package models

import "time"

// ArticleLike is the authoritative like edge between a user and an
// article. One row per pair; the composite primary key makes a
// duplicate like impossible regardless of request interleaving.
type ArticleLike struct {
	ArticleID string    `gorm:"primarykey;type:varchar(36)" json:"article_id"`
	UserID    string    `gorm:"primarykey;type:varchar(36)" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Article Article `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
