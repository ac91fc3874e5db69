package models

import (
	"time"
)

type Note struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title      string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	CategoryID *uint64   `gorm:"column:category_id;index:idx_category" json:"category_id"`
	UserID     uint64    `gorm:"column:user_id;not null;index:idx_user_updated,priority:1" json:"user_id"`
	IsPublic   bool      `gorm:"column:is_public;not null;default:false" json:"is_public"`
	ImagePath  *string   `gorm:"column:image_path;type:varchar(255)" json:"image_path"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime;index:idx_user_updated,priority:2" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
	User     *Users    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (n Note) TableName() string {
	return "notes"
}
