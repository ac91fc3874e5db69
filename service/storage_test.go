package service

import (
	"AppNotas/config"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalImageStore_SaveRemove(t *testing.T) {
	root := t.TempDir()
	store := &LocalImageStore{Root: root}
	ctx := context.Background()

	p, err := store.Save(ctx, strings.NewReader("png-bytes"), ".png")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^uploads/images/note-\d+\.png$`), p)

	full := filepath.Join(root, "images", filepath.Base(p))
	data, err := os.ReadFile(full)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Remove(ctx, p))
	assert.NoFileExists(t, full)

	err = store.Remove(ctx, p)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalImageStore_RemoveStaysInRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "uploads")
	require.NoError(t, os.MkdirAll(root, 0o755))
	outside := filepath.Join(base, "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	store := &LocalImageStore{Root: root}
	for _, p := range []string{
		"uploads/../secret.txt",
		"uploads/../../secret.txt",
		"../secret.txt",
		"secret.txt",
		"uploads/",
	} {
		err := store.Remove(context.Background(), p)
		assert.Error(t, err, p)
	}
	assert.FileExists(t, outside)

	err := store.Remove(context.Background(), "images/x.png")
	assert.True(t, errors.Is(err, ErrInvalidImagePath))
}

func TestNewImageStore(t *testing.T) {
	local, err := NewImageStore(&config.Storage{Driver: config.StorageLocal, UploadDir: "up"}, &config.OssConfig{})
	require.NoError(t, err)
	assert.IsType(t, &LocalImageStore{}, local)

	oss, err := NewImageStore(&config.Storage{Driver: config.StorageOss}, &config.OssConfig{
		Endpoint: "oss-cn-hangzhou.aliyuncs.com",
		Region:   "cn-hangzhou",
		Bucket:   "notes",
	})
	require.NoError(t, err)
	assert.Equal(t, "notes", oss.(*OssImageStore).BucketName)

	_, err = NewImageStore(&config.Storage{Driver: "ftp"}, &config.OssConfig{})
	assert.Error(t, err)
}

func TestObjectKey(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	key := ObjectKey(now, ".webp")
	assert.Regexp(t, regexp.MustCompile(`^note/2026/03/09/\d+\.webp$`), key)
}
