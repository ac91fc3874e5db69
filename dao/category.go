package dao

import (
	"AppNotas/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type CategoryDAO struct {
	Repo[models.Category]
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{Repo: NewRepo[models.Category](db)}
}

// ListVisible 系统分类 + 用户自己的分类，按名称升序
func (d *CategoryDAO) ListVisible(ctx context.Context, userID uint64) ([]*models.Category, error) {
	categories := make([]*models.Category, 0)
	err := d.Db.WithContext(ctx).
		Where("created_by IS NULL OR created_by = ?", userID).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

// FindOwned 只返回 userID 创建的分类，系统分类不会命中
func (d *CategoryDAO) FindOwned(ctx context.Context, id, userID uint64) (*models.Category, error) {
	return d.FindByWhere(ctx, "id = ? AND created_by = ?", id, userID)
}

// IsVisible 分类存在且对该用户可见
func (d *CategoryDAO) IsVisible(ctx context.Context, id, userID uint64) (bool, error) {
	return d.IsExist(ctx, "id = ? AND (created_by IS NULL OR created_by = ?)", id, userID)
}

// NameTaken 名称在用户作用域或系统作用域已存在；excludeID 为 0 时不排除
func (d *CategoryDAO) NameTaken(ctx context.Context, name string, userID, excludeID uint64) (bool, error) {
	if excludeID == 0 {
		return d.IsExist(ctx, "name = ? AND (created_by = ? OR created_by IS NULL)", name, userID)
	}
	return d.IsExist(ctx, "name = ? AND (created_by = ? OR created_by IS NULL) AND id <> ?", name, userID, excludeID)
}

func (d *CategoryDAO) Rename(ctx context.Context, id, userID uint64, name string) (int64, error) {
	return d.UpdateWhere(ctx, map[string]any{"name": name}, "id = ? AND created_by = ?", id, userID)
}

// DeleteOwned 同一事务内先解除笔记引用再删除分类
func (d *CategoryDAO) DeleteOwned(ctx context.Context, id, userID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Note{}).
			Where("category_id = ?", id).
			UpdateColumn("category_id", nil)
		if res.Error != nil {
			return fmt.Errorf("dao.Category.DeleteOwned clear notes: %w", res.Error)
		}

		res = tx.Where("id = ? AND created_by = ?", id, userID).Delete(&models.Category{})
		if res.Error != nil {
			return fmt.Errorf("dao.Category.DeleteOwned: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
