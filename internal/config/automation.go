package config

// Automation описывает браузерный сервис. Схема его API отличается между
// аккаунтами, поэтому базовый URL и путь задаются окружением.
type Automation struct {
	APIKey    string `env:"AUTOMATION_API_KEY,required" json:"-"`
	BaseURL   string `env:"AUTOMATION_BASE_URL" envDefault:"https://api.browser-use.com"`
	TasksPath string `env:"AUTOMATION_TASKS_PATH" envDefault:"/api/v1/run-task"`
	MaxSteps  int    `env:"AUTOMATION_MAX_STEPS" envDefault:"25"`
}
