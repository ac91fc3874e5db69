package config

// DefaultPasswordCost bcrypt 默认强度
const DefaultPasswordCost = 12

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// PasswordCost 只在测试环境调低
	PasswordCost int `json:"password_cost" yaml:"password_cost"`
}
