package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	Render(c, err)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRender_BizError(t *testing.T) {
	w, body := render(t, NewValidationError(MsgInvalidData, FieldError{Field: "title", Msg: "requerido"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, MsgInvalidData, body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "title", body.Errors[0].Field)

	// 包装后的业务错误同样识别
	wrapped := fmt.Errorf("service: %w", NewNotFoundError("Nota no encontrada"))
	w, body = render(t, wrapped)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Nota no encontrada", body.Message)
	assert.Empty(t, body.Errors)
	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(wrapped, KindAuth))
}

func TestRender_ServerError(t *testing.T) {
	t.Cleanup(func() { ExposeErrorDetail(false) })

	ExposeErrorDetail(false)
	w, body := render(t, errors.New("disk on fire"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, MsgServerError, body.Message)
	assert.Equal(t, MsgInternal, body.Error)

	ExposeErrorDetail(true)
	_, body = render(t, errors.New("disk on fire"))
	assert.Equal(t, "disk on fire", body.Error)
}

func TestErrorMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/error", func(c *gin.Context) { _ = c.Error(NewDuplicateError("La categoría ya existe")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Error del servidor","error":"Error interno"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/error", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"La categoría ya existe"}`, w.Body.String())
}
