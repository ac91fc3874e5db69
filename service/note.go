package service

import (
	"AppNotas/dao"
	"AppNotas/models"
	"AppNotas/pkg/log"
	"AppNotas/pkg/response"
	"AppNotas/types"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	MsgNoteNotFound   = "Nota no encontrada"
	MsgNoteTitle      = "El título es requerido y debe tener máximo 255 caracteres"
	MsgNoteContent    = "El contenido es requerido"
	MsgNoteCategory   = "La categoría no existe"
	MsgCategoryIDType = "ID de categoría debe ser un número"
	MsgImageOnly      = "Solo se permiten archivos de imagen"
	MsgImageTooLarge  = "La imagen supera el tamaño máximo permitido"
	MsgNoteCreated    = "Nota creada"
	MsgNoteUpdated    = "Nota actualizada"
	MsgNoteDeleted    = "Nota eliminada"
)

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	List(ctx context.Context, userID uint64) ([]*types.NoteView, error)
	Get(ctx context.Context, userID, id uint64) (*types.NoteView, error)
	Create(ctx context.Context, userID uint64, in *types.NoteInput) (*types.NoteView, error)
	Update(ctx context.Context, userID, id uint64, in *types.NoteInput) (*types.NoteView, error)
	Delete(ctx context.Context, userID, id uint64) error
	// GetPublic 不需要身份，只看 is_public
	GetPublic(ctx context.Context, id uint64) (*types.PublicNote, error)
}

type NoteService struct {
	NoteDAO     *dao.NoteDAO
	CategoryDAO *dao.CategoryDAO
	ImageStore  IImageStore
}

// List 用户自己的笔记，按 updated_at 倒序
func (s *NoteService) List(ctx context.Context, userID uint64) ([]*types.NoteView, error) {
	return s.NoteDAO.ListByUser(ctx, userID)
}

// Get 非本人的笔记与不存在同样返回 404
func (s *NoteService) Get(ctx context.Context, userID, id uint64) (*types.NoteView, error) {
	note, err := s.NoteDAO.FindView(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(MsgNoteNotFound)
		}
		return nil, err
	}
	return note, nil
}

func (s *NoteService) GetPublic(ctx context.Context, id uint64) (*types.PublicNote, error) {
	note, err := s.NoteDAO.FindPublic(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(MsgNoteNotFound)
		}
		return nil, err
	}
	return note, nil
}

// validate 校验并规范化入参；分类必须存在且对当前用户可见
func (s *NoteService) validate(ctx context.Context, userID uint64, in *types.NoteInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)

	var fields []response.FieldError
	if n := utf8.RuneCountInString(in.Title); n < 1 || n > types.NoteTitleMaxLen {
		fields = append(fields, response.FieldError{Field: "title", Msg: MsgNoteTitle})
	}
	if in.Content == "" {
		fields = append(fields, response.FieldError{Field: "content", Msg: MsgNoteContent})
	}
	if in.CategoryID != nil {
		ok, err := s.CategoryDAO.IsVisible(ctx, *in.CategoryID, userID)
		if err != nil {
			return fmt.Errorf("check category: %w", err)
		}
		if !ok {
			fields = append(fields, response.FieldError{Field: "category_id", Msg: MsgNoteCategory})
		}
	}

	if len(fields) > 0 {
		return response.NewValidationError(response.MsgInvalidData, fields...)
	}
	return nil
}

// Create 创建笔记
func (s *NoteService) Create(ctx context.Context, userID uint64, in *types.NoteInput) (*types.NoteView, error) {
	if err := s.validate(ctx, userID, in); err != nil {
		return nil, err
	}

	note := noteModel(userID, in)
	if err := s.NoteDAO.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	return s.NoteDAO.FindView(ctx, note.ID, userID)
}

// Update 覆盖标题/内容/分类/可见性；传了新图片时删除旧图片
func (s *NoteService) Update(ctx context.Context, userID, id uint64, in *types.NoteInput) (*types.NoteView, error) {
	current, err := s.NoteDAO.FindOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(MsgNoteNotFound)
		}
		return nil, fmt.Errorf("find note: %w", err)
	}

	if err := s.validate(ctx, userID, in); err != nil {
		return nil, err
	}

	imagePath := current.ImagePath
	if in.ImagePath != nil {
		imagePath = in.ImagePath
	}

	// updated_at 严格递增
	now := time.Now()
	if !now.After(current.UpdatedAt) {
		now = current.UpdatedAt.Add(time.Millisecond)
	}

	affected, err := s.NoteDAO.UpdateOwned(ctx, id, userID, map[string]any{
		"title":       in.Title,
		"content":     in.Content,
		"category_id": in.CategoryID,
		"is_public":   in.IsPublic,
		"image_path":  imagePath,
		"updated_at":  now,
	})
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	// 查询与更新之间被删除
	if affected == 0 {
		return nil, response.NewNotFoundError(MsgNoteNotFound)
	}

	// 新图片写入成功后再删除旧图片
	if current.ImagePath != nil && *current.ImagePath != *imagePath {
		s.removeImage(ctx, *current.ImagePath)
	}

	note, err := s.NoteDAO.FindView(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(MsgNoteNotFound)
		}
		return nil, err
	}
	return note, nil
}

// Delete 先尽力删除图片，再删除记录
func (s *NoteService) Delete(ctx context.Context, userID, id uint64) error {
	current, err := s.NoteDAO.FindOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError(MsgNoteNotFound)
		}
		return fmt.Errorf("find note: %w", err)
	}

	if current.ImagePath != nil {
		s.removeImage(ctx, *current.ImagePath)
	}

	affected, err := s.NoteDAO.DeleteOwned(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if affected == 0 {
		return response.NewNotFoundError(MsgNoteNotFound)
	}
	return nil
}

func noteModel(userID uint64, in *types.NoteInput) *models.Note {
	return &models.Note{
		Title:      in.Title,
		Content:    in.Content,
		CategoryID: in.CategoryID,
		UserID:     userID,
		IsPublic:   in.IsPublic,
		ImagePath:  in.ImagePath,
	}
}

// removeImage 删除失败只记日志，不影响主流程
func (s *NoteService) removeImage(ctx context.Context, imagePath string) {
	if err := s.ImageStore.Remove(ctx, imagePath); err != nil {
		log.L.Warn("remove note image failed", zap.String("path", imagePath), zap.Error(err))
	}
}
