package config

type Completion struct {
	APIKey  string `env:"COMPLETION_API_KEY,required" json:"-"`
	BaseURL string `env:"COMPLETION_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model   string `env:"COMPLETION_MODEL" envDefault:"gpt-4o-mini"`
}
