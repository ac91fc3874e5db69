package models

import "time"

// Category created_by 为空表示系统分类
type Category struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uk_name_creator,priority:1" json:"name"`
	CreatedBy *uint64   `gorm:"column:created_by;uniqueIndex:uk_name_creator,priority:2" json:"created_by"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// 删除用户后分类保留，created_by 置空
	Creator *Users `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// IsSystem 是否系统分类
func (c *Category) IsSystem() bool {
	return c.CreatedBy == nil
}
