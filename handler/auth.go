package handler

import (
	"AppNotas/middleware"
	"AppNotas/pkg/context"
	"AppNotas/pkg/response"
	"AppNotas/service"
	"AppNotas/types"

	"github.com/gin-gonic/gin"
)

var registerMessages = map[string]string{
	"email":    service.MsgEmailRequired,
	"password": service.MsgPasswordTooShort,
}

var loginMessages = map[string]string{
	"email":    service.MsgEmailRequired,
	"password": service.MsgPasswordRequired,
}

type Auth struct {
	UserService service.IUserService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(u.UserService)
	auth := r.Group("/auth")
	auth.POST("/register", context.Wrap(u.Register)) // 注册
	auth.POST("/login", context.Wrap(u.Login))       // 登录
	auth.GET("/verify", authorize, context.Wrap(u.Verify))
}

func (u *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return context.BindError(err, registerMessages)
	}

	token, user, err := u.UserService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	response.Created(c, types.AuthResponse{
		Message: "Usuario registrado",
		Token:   token,
		User:    user,
	})
	return nil
}

func (u *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return context.BindError(err, loginMessages)
	}

	token, user, err := u.UserService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	response.Success(c, types.AuthResponse{
		Message: "Login exitoso",
		Token:   token,
		User:    user,
	})
	return nil
}

// Verify 令牌已由中间件校验，这里只回显当前用户
func (u *Auth) Verify(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	response.Success(c, types.VerifyResponse{
		Message: "Token válido",
		User: &types.UserResponse{
			ID:    uid,
			Email: context.GetEmail(c),
		},
	})
	return nil
}
