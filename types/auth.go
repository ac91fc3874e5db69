package types

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse 对外暴露的用户字段，不含密码哈希
type UserResponse struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    *UserResponse `json:"user"`
}

type VerifyResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}
