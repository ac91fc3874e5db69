package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App       `json:"app" yaml:"app"`
	Server   *Server    `json:"server" yaml:"server"`
	Database *Database  `json:"database" yaml:"database"`
	Jwt      *Jwt       `json:"jwt" yaml:"jwt"`
	Storage  *Storage   `json:"storage" yaml:"storage"`
	Oss      *OssConfig `json:"oss" yaml:"oss"`
	Cors     *Cors      `json:"cors" yaml:"cors"`
}

type Server struct {
	Http            int `json:"http" yaml:"http"`
	ShutdownTimeout int `json:"shutdown_timeout" yaml:"shutdown_timeout"` // 秒
}

// Cors 跨域配置
type Cors struct {
	AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}
	if err := conf.Validate(); err != nil {
		panic(fmt.Sprintf("配置 %s 不完整: %v", filename, err))
	}

	return conf
}

// Parse 解析 yaml 内容，并叠加环境变量和默认值
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}

	conf.applyEnv()
	conf.withDefaults()
	return &conf, nil
}

// applyEnv 部署环境里的敏感项优先取环境变量
func (c *Config) applyEnv() {
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Oss == nil {
		c.Oss = &OssConfig{}
	}

	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Http = port
		}
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		c.Database.Dsn = v
	}
	if v := os.Getenv("OSS_ACCESS_KEY_ID"); v != "" {
		c.Oss.AccessKeyID = v
	}
	if v := os.Getenv("OSS_ACCESS_KEY_SECRET"); v != "" {
		c.Oss.AccessKeySecret = v
	}
}

func (c *Config) withDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.PasswordCost == 0 {
		c.App.PasswordCost = DefaultPasswordCost
	}
	if c.Server.Http == 0 {
		c.Server.Http = 5000
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 3
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSqlite
	}
	if c.Database.Dsn == "" && c.Database.Driver == DriverSqlite {
		c.Database.Dsn = "database.sqlite"
	}
	if c.Jwt.ExpireHours == 0 {
		c.Jwt.ExpireHours = 24
	}
	if c.Storage == nil {
		c.Storage = &Storage{}
	}
	c.Storage.withDefaults()
	if c.Cors == nil {
		c.Cors = &Cors{}
	}
	if len(c.Cors.AllowOrigins) == 0 {
		c.Cors.AllowOrigins = []string{"http://localhost:5173", "http://localhost:5174"}
	}
}

// Validate 启动前必须具备的配置项
func (c *Config) Validate() error {
	if c.Jwt.Secret == "" {
		return errors.New("jwt.secret is required (or set JWT_SECRET)")
	}
	switch c.Database.Driver {
	case DriverMysql, DriverPostgres, DriverSqlite:
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.Database.Dsn == "" {
		return errors.New("database.dsn is required")
	}
	if c.Storage.Driver == StorageOss && c.Oss.Bucket == "" {
		return errors.New("oss.bucket is required when storage.driver is oss")
	}
	return nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
