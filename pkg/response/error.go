package response

import (
	"AppNotas/pkg/log"
	"AppNotas/pkg/utils"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Kind 业务错误分类
type Kind string

const (
	KindValidation Kind = "validation"
	KindDuplicate  Kind = "duplicate"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
)

const (
	MsgInvalidData = "Datos inválidos"
	MsgServerError = "Error del servidor"
	MsgInternal    = "Error interno"
)

// exposeDetail 开发模式下 500 响应带上原始错误
var exposeDetail atomic.Bool

func ExposeErrorDetail(on bool) {
	exposeDetail.Store(on)
}

type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type BizError struct {
	Code   int
	Kind   Kind
	Msg    string
	Errors []FieldError
}

func (e *BizError) Error() string {
	return e.Msg
}

// NewValidationError 参数校验失败，附带字段明细
func NewValidationError(msg string, fields ...FieldError) *BizError {
	return &BizError{Code: http.StatusBadRequest, Kind: KindValidation, Msg: msg, Errors: fields}
}

func NewDuplicateError(msg string) *BizError {
	return &BizError{Code: http.StatusBadRequest, Kind: KindDuplicate, Msg: msg}
}

// NewAuthError code 取 401 或 403
func NewAuthError(code int, msg string) *BizError {
	return &BizError{Code: code, Kind: KindAuth, Msg: msg}
}

func NewNotFoundError(msg string) *BizError {
	return &BizError{Code: http.StatusNotFound, Kind: KindNotFound, Msg: msg}
}

// IsKind 判断错误链上是否为指定分类的业务错误
func IsKind(err error, kind Kind) bool {
	var be *BizError
	return errors.As(err, &be) && be.Kind == kind
}

// Render 把任意错误写成 JSON 响应；非业务错误一律 500
func Render(c *gin.Context, err error) {
	var be *BizError
	if errors.As(err, &be) {
		c.AbortWithStatusJSON(be.Code, Response{
			Message: be.Msg,
			Errors:  be.Errors,
		})
		return
	}

	log.L.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	detail := MsgInternal
	if exposeDetail.Load() {
		detail = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
		Message: MsgServerError,
		Error:   detail,
	})
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered",
					zap.String("path", c.Request.URL.Path),
					zap.String("trace", utils.PanicTrace(r, 2)),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
					Message: MsgServerError,
					Error:   MsgInternal,
				})
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			Render(c, c.Errors.Last().Err)
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Message: msg,
	})
}
