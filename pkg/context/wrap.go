package context

import (
	"AppNotas/pkg/response"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
)

type HandlerFunc func(*gin.Context) error

func init() {
	// 校验错误里使用 json / form 字段名
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
	}
}

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			response.Render(c, err)
		}
	}
}

// BindError 把 gin 绑定错误转换为带字段明细的校验错误
// messages: 字段名 -> 提示语
func BindError(err error, messages map[string]string) *response.BizError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return response.NewValidationError(response.MsgInvalidData)
	}

	fields := make([]response.FieldError, 0, len(ve))
	for _, fe := range ve {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = fe.Field() + " no es válido"
		}
		fields = append(fields, response.FieldError{Field: fe.Field(), Msg: msg})
	}
	return response.NewValidationError(response.MsgInvalidData, fields...)
}

func SetUser(c *gin.Context, uid uint64, email string) {
	c.Set(CtxUserID, uid)
	c.Set(CtxEmail, email)
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

func GetEmail(c *gin.Context) string {
	return c.GetString(CtxEmail)
}
