package model

import "time"

// PageModel mirrors the 'pages' table.
type PageModel struct {
	ID          int    `gorm:"primary_key;autoIncrement"`
	Title       string `gorm:"type:varchar(255);not null"`
	URL         string `gorm:"type:varchar(255);unique;not null"`
	Content     string `gorm:"type:text"`
	ShouldFetch bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PageModel) TableName() string {
	return "pages"
}
