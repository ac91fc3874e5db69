package handler

import (
	"AppNotas/config"
	"AppNotas/middleware"
	"AppNotas/pkg/context"
	"AppNotas/pkg/log"
	"AppNotas/pkg/response"
	"AppNotas/service"
	"AppNotas/types"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

// multipartOverhead 表单字段和分隔符预留的字节数
const multipartOverhead = 1 << 20

// 允许的图片格式 -> 扩展名
var imageExt = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
	"webp": ".webp",
}

type Note struct {
	UserService service.IUserService
	NoteService service.INoteService
	ImageStore  service.IImageStore
	Storage     *config.Storage
}

func (n *Note) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(n.UserService)
	g := r.Group("/notes")
	g.Use(authorize)
	g.GET("", context.Wrap(n.List))
	g.GET("/:id", context.Wrap(n.Get))
	g.POST("", context.Wrap(n.Create))
	g.PUT("/:id", context.Wrap(n.Update))
	g.DELETE("/:id", context.Wrap(n.Delete))
}

func (n *Note) List(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	notes, err := n.NoteService.List(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, notes)
	return nil
}

func (n *Note) Get(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, service.MsgNoteNotFound)
	if err != nil {
		return err
	}

	note, err := n.NoteService.Get(c.Request.Context(), uid, id)
	if err != nil {
		return err
	}
	response.Success(c, note)
	return nil
}

// Create 创建笔记
func (n *Note) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	in, header, err := n.bind(c)
	if err != nil {
		return err
	}
	if err := n.attach(c, in, header); err != nil {
		return err
	}

	note, err := n.NoteService.Create(c.Request.Context(), uid, in)
	if err != nil {
		n.discard(c, in)
		return err
	}
	response.Created(c, types.NoteResponse{
		Message: service.MsgNoteCreated,
		Note:    note,
	})
	return nil
}

func (n *Note) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, service.MsgNoteNotFound)
	if err != nil {
		return err
	}

	in, header, err := n.bind(c)
	if err != nil {
		return err
	}
	if err := n.attach(c, in, header); err != nil {
		return err
	}

	note, err := n.NoteService.Update(c.Request.Context(), uid, id, in)
	if err != nil {
		n.discard(c, in)
		return err
	}
	response.Success(c, types.NoteResponse{
		Message: service.MsgNoteUpdated,
		Note:    note,
	})
	return nil
}

func (n *Note) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, service.MsgNoteNotFound)
	if err != nil {
		return err
	}

	if err := n.NoteService.Delete(c.Request.Context(), uid, id); err != nil {
		return err
	}
	response.Message(c, service.MsgNoteDeleted)
	return nil
}

// bind 支持 multipart 表单（可带 image）和 JSON 两种提交方式
func (n *Note) bind(c *gin.Context) (*types.NoteInput, *multipart.FileHeader, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n.Storage.MaxSize+multipartOverhead)

	if c.ContentType() == binding.MIMEJSON {
		var req types.NoteJSONRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, nil, response.NewValidationError(response.MsgInvalidData)
		}
		categoryID, err := parseCategoryID(req.CategoryID)
		if err != nil {
			return nil, nil, err
		}
		return &types.NoteInput{
			Title:      req.Title,
			Content:    req.Content,
			CategoryID: categoryID,
			IsPublic:   types.ParseIsPublic(req.IsPublic),
		}, nil, nil
	}

	if _, err := c.MultipartForm(); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, imageTooLarge()
		}
		return nil, nil, response.NewValidationError(response.MsgInvalidData)
	}

	categoryID, err := parseCategoryID(c.PostForm("category_id"))
	if err != nil {
		return nil, nil, err
	}
	in := &types.NoteInput{
		Title:      c.PostForm("title"),
		Content:    c.PostForm("content"),
		CategoryID: categoryID,
		IsPublic:   types.ParseIsPublic(c.PostForm("is_public")),
	}

	header, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return in, nil, nil
		}
		return nil, nil, response.NewValidationError(response.MsgInvalidData)
	}
	return in, header, nil
}

// parseCategoryID 空值视为不设置分类；其它必须是正整数
func parseCategoryID(v any) (*uint64, error) {
	invalid := response.NewValidationError(response.MsgInvalidData, response.FieldError{
		Field: "category_id",
		Msg:   service.MsgCategoryIDType,
	})

	var id uint64
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		val = strings.TrimSpace(val)
		if val == "" || val == "null" {
			return nil, nil
		}
		parsed, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return nil, invalid
		}
		id = parsed
	case float64:
		if val != math.Trunc(val) || val < 0 || val > math.MaxInt64 {
			return nil, invalid
		}
		id = uint64(val)
	default:
		return nil, invalid
	}

	// 0 与未填写等价
	if id == 0 {
		return nil, nil
	}
	return &id, nil
}

// attach 校验并保存上传图片，路径写回 in.ImagePath
func (n *Note) attach(c *gin.Context, in *types.NoteInput, header *multipart.FileHeader) error {
	if header == nil {
		return nil
	}
	if header.Size > n.Storage.MaxSize {
		return imageTooLarge()
	}

	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	ext, err := sniffImage(file)
	if err != nil {
		return response.NewValidationError(response.MsgInvalidData, response.FieldError{
			Field: "image",
			Msg:   service.MsgImageOnly,
		})
	}

	path, err := n.ImageStore.Save(c.Request.Context(), io.LimitReader(file, n.Storage.MaxSize+1), ext)
	if err != nil {
		return err
	}
	in.ImagePath = &path
	return nil
}

func imageTooLarge() error {
	return response.NewValidationError(response.MsgInvalidData, response.FieldError{
		Field: "image",
		Msg:   service.MsgImageTooLarge,
	})
}

// sniffImage 读文件头判断 MIME 与格式，完成后指针回到开头
func sniffImage(file multipart.File) (string, error) {
	head := make([]byte, 512)
	read, _ := file.Read(head)
	if !strings.HasPrefix(http.DetectContentType(head[:read]), "image/") {
		return "", errors.New("not an image")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	_, format, err := image.DecodeConfig(file)
	if err != nil {
		return "", err
	}
	ext, ok := imageExt[strings.ToLower(format)]
	if !ok {
		return "", errors.New("unsupported image format: " + format)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return ext, nil
}

// discard 业务失败时清理本次刚上传的图片
func (n *Note) discard(c *gin.Context, in *types.NoteInput) {
	if in.ImagePath == nil {
		return
	}
	if err := n.ImageStore.Remove(c.Request.Context(), *in.ImagePath); err != nil {
		log.L.Warn("discard uploaded image failed", zap.String("path", *in.ImagePath), zap.Error(err))
	}
}
