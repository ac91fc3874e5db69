package service

import (
	"AppNotas/config"
	"AppNotas/dao"
	"AppNotas/models"
	"AppNotas/pkg/encrypt"
	"AppNotas/pkg/jwt"
	"AppNotas/pkg/response"
	"AppNotas/types"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	MsgEmailExists      = "El email ya existe"
	MsgBadCredentials   = "Credenciales incorrectas"
	MsgInvalidToken     = "Token no válido"
	MsgInvalidUser      = "Usuario no válido"
	MsgEmailRequired    = "Email válido requerido"
	MsgPasswordTooShort = "La contraseña debe tener al menos 6 caracteres"
	MsgPasswordRequired = "Contraseña requerida"
	MsgPasswordTooLong  = "La contraseña no puede superar los 72 bytes"
	PasswordMinLen      = 6

	// PasswordMaxBytes bcrypt 只接受 72 字节以内的密码
	PasswordMaxBytes = 72
)

var validate = validator.New()

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	// Register 注册并签发令牌
	Register(ctx context.Context, email, password string) (string, *types.UserResponse, error)
	// Login 账号不存在和密码错误返回同一个错误
	Login(ctx context.Context, email, password string) (string, *types.UserResponse, error)
	// ResolveIdentity 校验令牌并回查用户，用户被删除后旧令牌随即失效
	ResolveIdentity(ctx context.Context, token string) (*types.UserResponse, error)
}

type UserService struct {
	Config    *config.Config
	UsersRepo *dao.Users
}

// NormalizeEmail 去空格并转小写
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register 注册用户
func (s *UserService) Register(ctx context.Context, email, password string) (string, *types.UserResponse, error) {
	email = NormalizeEmail(email)

	var fields []response.FieldError
	if validate.Var(email, "required,email") != nil {
		fields = append(fields, response.FieldError{Field: "email", Msg: MsgEmailRequired})
	}
	switch {
	case len([]rune(password)) < PasswordMinLen:
		fields = append(fields, response.FieldError{Field: "password", Msg: MsgPasswordTooShort})
	case len(password) > PasswordMaxBytes:
		fields = append(fields, response.FieldError{Field: "password", Msg: MsgPasswordTooLong})
	}
	if len(fields) > 0 {
		return "", nil, response.NewValidationError(response.MsgInvalidData, fields...)
	}

	exist, err := s.UsersRepo.IsEmailExist(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("check email: %w", err)
	}
	if exist {
		return "", nil, response.NewDuplicateError(MsgEmailExists)
	}

	hash, err := encrypt.HashPassword(password, s.Config.App.PasswordCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.Users{
		Email:    email,
		Password: hash,
	}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		// 并发注册同一邮箱时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, response.NewDuplicateError(MsgEmailExists)
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	return s.issue(user)
}

// Login 登录处理
func (s *UserService) Login(ctx context.Context, email, password string) (string, *types.UserResponse, error) {
	// 注册时已拒绝超长密码，这里不可能匹配
	if len(password) > PasswordMaxBytes {
		return "", nil, response.NewAuthError(http.StatusUnauthorized, MsgBadCredentials)
	}

	user, err := s.UsersRepo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			encrypt.CompareDummy(password, s.Config.App.PasswordCost)
			return "", nil, response.NewAuthError(http.StatusUnauthorized, MsgBadCredentials)
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return "", nil, response.NewAuthError(http.StatusUnauthorized, MsgBadCredentials)
	}

	return s.issue(user)
}

func (s *UserService) ResolveIdentity(ctx context.Context, token string) (*types.UserResponse, error) {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), jwt.TypeAccess, token)
	if err != nil {
		return nil, response.NewAuthError(http.StatusForbidden, MsgInvalidToken)
	}

	user, err := s.UsersRepo.FindById(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAuthError(http.StatusUnauthorized, MsgInvalidUser)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &types.UserResponse{ID: user.ID, Email: user.Email}, nil
}

func (s *UserService) issue(user *models.Users) (string, *types.UserResponse, error) {
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, jwt.TypeAccess, s.Config.Jwt.Expire())
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, &types.UserResponse{ID: user.ID, Email: user.Email}, nil
}
