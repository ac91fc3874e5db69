package types

import (
	"encoding/json"
	"time"
)

const NoteTitleMaxLen = 255

// NoteInput 创建/更新笔记的入参，图片路径由上传组件先行落盘后传入
type NoteInput struct {
	Title      string
	Content    string
	CategoryID *uint64
	IsPublic   bool
	ImagePath  *string
}

// NoteJSONRequest JSON 方式提交笔记（不带图片）
type NoteJSONRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID any    `json:"category_id"`
	IsPublic   any    `json:"is_public"`
}

// NoteView 笔记详情，关联分类名和作者邮箱
type NoteView struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	IsPublic     bool      `json:"is_public"`
	ImagePath    *string   `json:"image_path"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CategoryID   *uint64   `json:"category_id"`
	CategoryName *string   `json:"category_name"`
	UserEmail    string    `json:"user_email,omitempty"`
}

// PublicNote 公开笔记的投影，不含可见性和分类 ID
type PublicNote struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ImagePath    *string   `json:"image_path"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CategoryName *string   `json:"category_name"`
	UserEmail    string    `json:"user_email"`
}

type NoteResponse struct {
	Message string    `json:"message"`
	Note    *NoteView `json:"note"`
}

// ParseIsPublic is_public 的取值表：
//
//	bool true            -> true
//	string "true"        -> true
//	整数 1 / JSON 数字 1  -> true
//	其它（含 nil、"1"、"TRUE"、0、false） -> false
func ParseIsPublic(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true"
	case int:
		return val == 1
	case int8:
		return val == 1
	case int16:
		return val == 1
	case int32:
		return val == 1
	case int64:
		return val == 1
	case uint:
		return val == 1
	case uint8:
		return val == 1
	case uint16:
		return val == 1
	case uint32:
		return val == 1
	case uint64:
		return val == 1
	case float64:
		return val == 1
	case json.Number:
		n, err := val.Int64()
		return err == nil && n == 1
	default:
		return false
	}
}
