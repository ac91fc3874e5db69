package dao

import (
	"AppNotas/models"
	"AppNotas/types"
	"context"

	"gorm.io/gorm"
)

const (
	noteViewColumns = "n.id, n.title, n.content, n.is_public, n.image_path, n.created_at, n.updated_at, " +
		"n.category_id, c.name AS category_name, u.email AS user_email"
	publicNoteColumns = "n.id, n.title, n.content, n.image_path, n.created_at, n.updated_at, " +
		"c.name AS category_name, u.email AS user_email"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

func (d *NoteDAO) joined(ctx context.Context, columns string) *gorm.DB {
	return d.Db.WithContext(ctx).
		Table("notes AS n").
		Select(columns).
		Joins("LEFT JOIN categories c ON n.category_id = c.id").
		Joins("LEFT JOIN users u ON n.user_id = u.id")
}

// ListByUser 用户的全部笔记，最近修改的在前
func (d *NoteDAO) ListByUser(ctx context.Context, userID uint64) ([]*types.NoteView, error) {
	notes := make([]*types.NoteView, 0)
	err := d.joined(ctx, noteViewColumns).
		Where("n.user_id = ?", userID).
		Order("n.updated_at DESC").
		Order("n.id DESC").
		Scan(&notes).Error
	return notes, err
}

// FindView 按 ID + 所属用户查询详情
func (d *NoteDAO) FindView(ctx context.Context, id, userID uint64) (*types.NoteView, error) {
	var note types.NoteView
	res := d.joined(ctx, noteViewColumns).
		Where("n.id = ? AND n.user_id = ?", id, userID).
		Limit(1).
		Scan(&note)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &note, nil
}

// FindPublic 只要 is_public 为真即可读取，不校验所属用户
func (d *NoteDAO) FindPublic(ctx context.Context, id uint64) (*types.PublicNote, error) {
	var note types.PublicNote
	res := d.joined(ctx, publicNoteColumns).
		Where("n.id = ? AND n.is_public = ?", id, true).
		Limit(1).
		Scan(&note)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &note, nil
}

// FindOwned 取原始行，用于更新/删除前拿到旧图片路径
func (d *NoteDAO) FindOwned(ctx context.Context, id, userID uint64) (*models.Note, error) {
	return d.FindByWhere(ctx, "id = ? AND user_id = ?", id, userID)
}

func (d *NoteDAO) UpdateOwned(ctx context.Context, id, userID uint64, data map[string]any) (int64, error) {
	return d.UpdateWhere(ctx, data, "id = ? AND user_id = ?", id, userID)
}

func (d *NoteDAO) DeleteOwned(ctx context.Context, id, userID uint64) (int64, error) {
	return d.DeleteWhere(ctx, "id = ? AND user_id = ?", id, userID)
}
