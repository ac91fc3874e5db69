package service

import (
	"AppNotas/config"
	"AppNotas/pkg/snowflake"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// OssImageStore 图片存阿里云 OSS，image_path 保存 objectKey
type OssImageStore struct {
	Client     *oss.Client
	BucketName string
}

var _ IImageStore = (*OssImageStore)(nil)

func NewOssImageStore(cfg *config.OssConfig) *OssImageStore {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	return &OssImageStore{
		Client:     oss.NewClient(ossCfg),
		BucketName: cfg.Bucket,
	}
}

// ObjectKey note/2006/01/02/<id><ext>
func ObjectKey(now time.Time, ext string) string {
	return fmt.Sprintf("note/%s/%d%s",
		now.Format("2006/01/02"),
		snowflake.GenID(),
		ext,
	)
}

// Save 上传 Reader（HTTP 上传场景）
func (s *OssImageStore) Save(
	ctx context.Context,
	reader io.Reader,
	ext string,
) (string, error) {
	objectKey := ObjectKey(time.Now(), ext)
	_, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   reader,
	})
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

// Remove 删除对象
func (s *OssImageStore) Remove(
	ctx context.Context,
	objectKey string,
) error {

	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	return err
}
