package service

import (
	"AppNotas/config"
	"AppNotas/pkg/snowflake"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalURLPrefix 本地图片对外路径前缀，对应静态目录 /uploads
const LocalURLPrefix = "uploads"

var ErrInvalidImagePath = errors.New("invalid image path")

// IImageStore 笔记图片存储，返回的路径原样保存在 notes.image_path
type IImageStore interface {
	Save(ctx context.Context, reader io.Reader, ext string) (string, error)
	Remove(ctx context.Context, imagePath string) error
}

func NewImageStore(cfg *config.Storage, ossCfg *config.OssConfig) (IImageStore, error) {
	switch cfg.Driver {
	case config.StorageLocal:
		return &LocalImageStore{Root: cfg.UploadDir}, nil
	case config.StorageOss:
		return NewOssImageStore(ossCfg), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %q", cfg.Driver)
	}
}

// LocalImageStore 图片落在 Root/images 下
type LocalImageStore struct {
	Root string
}

var _ IImageStore = (*LocalImageStore)(nil)

func (s *LocalImageStore) Save(ctx context.Context, reader io.Reader, ext string) (string, error) {
	dir := filepath.Join(s.Root, "images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("note-%d%s", snowflake.GenID(), ext)
	full := filepath.Join(dir, name)
	f, err := os.OpenFile(full, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		os.Remove(full)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		return "", err
	}

	return path.Join(LocalURLPrefix, "images", name), nil
}

// Remove 只允许删除 Root 目录内的文件
func (s *LocalImageStore) Remove(ctx context.Context, imagePath string) error {
	rel := strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(imagePath)), "/")
	rel, ok := strings.CutPrefix(rel, LocalURLPrefix+"/")
	if !ok || rel == "" {
		return fmt.Errorf("%w: %s", ErrInvalidImagePath, imagePath)
	}
	return os.Remove(filepath.Join(s.Root, filepath.FromSlash(rel)))
}
