package config

const (
	StorageLocal = "local"
	StorageOss   = "oss"
)

// Storage 笔记图片存储
type Storage struct {
	Driver    string `json:"driver" yaml:"driver"`         // local | oss
	UploadDir string `json:"upload_dir" yaml:"upload_dir"` // 本地存储根目录，对外映射为 /uploads
	MaxSize   int64  `json:"max_size" yaml:"max_size"`     // 单张图片字节上限
}

func (s *Storage) withDefaults() {
	if s.Driver == "" {
		s.Driver = StorageLocal
	}
	if s.UploadDir == "" {
		s.UploadDir = "uploads"
	}
	if s.MaxSize == 0 {
		s.MaxSize = 5 << 20
	}
}

func ProvideStorageConfig(cfg *Config) *Storage {
	return cfg.Storage
}
