package config

const (
	DriverMysql    = "mysql"
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

// Database 数据库配置
type Database struct {
	Driver       string `json:"driver" yaml:"driver"`
	Dsn          string `json:"dsn" yaml:"dsn"`
	MaxOpenConns int    `json:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns" yaml:"max_idle_conns"`
	Debug        bool   `json:"debug" yaml:"debug"` // 打印 SQL
}
