package service

import (
	"AppNotas/dao"
	"AppNotas/models"
	"AppNotas/pkg/response"
	"AppNotas/types"
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"
)

const (
	MsgCategoryName     = "El nombre de la categoría es requerido y debe tener máximo 100 caracteres"
	MsgCategoryExists   = "La categoría ya existe"
	MsgCategoryNotFound = "No encontrada o sin permisos"
	MsgCategoryCreated  = "Categoría creada"
	MsgCategoryUpdated  = "Categoría actualizada"
	MsgCategoryDeleted  = "Categoría eliminada"
)

var _ ICategoryService = (*CategoryService)(nil)

type ICategoryService interface {
	ListVisible(ctx context.Context, userID uint64) ([]*models.Category, error)
	Create(ctx context.Context, userID uint64, name string) (*models.Category, error)
	Update(ctx context.Context, userID, id uint64, name string) (*models.Category, error)
	Delete(ctx context.Context, userID, id uint64) error
}

type CategoryService struct {
	CategoryDAO *dao.CategoryDAO
}

func checkCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < 1 || n > types.CategoryNameMaxLen {
		return "", response.NewValidationError(response.MsgInvalidData, response.FieldError{
			Field: "name",
			Msg:   MsgCategoryName,
		})
	}
	return name, nil
}

// ListVisible 系统分类和自己的分类
func (s *CategoryService) ListVisible(ctx context.Context, userID uint64) ([]*models.Category, error) {
	return s.CategoryDAO.ListVisible(ctx, userID)
}

// Create 同名校验同时覆盖用户作用域和系统作用域，用户不能遮蔽系统分类
func (s *CategoryService) Create(ctx context.Context, userID uint64, name string) (*models.Category, error) {
	name, err := checkCategoryName(name)
	if err != nil {
		return nil, err
	}

	taken, err := s.CategoryDAO.NameTaken(ctx, name, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if taken {
		return nil, response.NewDuplicateError(MsgCategoryExists)
	}

	category := &models.Category{
		Name:      name,
		CreatedBy: &userID,
	}
	if err := s.CategoryDAO.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewDuplicateError(MsgCategoryExists)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// Update 只能修改自己创建的分类，系统分类走不到这里
func (s *CategoryService) Update(ctx context.Context, userID, id uint64, name string) (*models.Category, error) {
	name, err := checkCategoryName(name)
	if err != nil {
		return nil, err
	}

	category, err := s.CategoryDAO.FindOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(MsgCategoryNotFound)
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	if category.Name == name {
		return category, nil
	}

	taken, err := s.CategoryDAO.NameTaken(ctx, name, userID, id)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if taken {
		return nil, response.NewDuplicateError(MsgCategoryExists)
	}

	if _, err := s.CategoryDAO.Rename(ctx, id, userID, name); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewDuplicateError(MsgCategoryExists)
		}
		return nil, fmt.Errorf("rename category: %w", err)
	}
	category.Name = name
	return category, nil
}

// Delete 引用该分类的笔记保留，category_id 置空
func (s *CategoryService) Delete(ctx context.Context, userID, id uint64) error {
	if err := s.CategoryDAO.DeleteOwned(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError(MsgCategoryNotFound)
		}
		return err
	}
	return nil
}
