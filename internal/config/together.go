package config

import (
	"os"
	"sync"
)

type TogetherConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

var (
	togetherConfig *TogetherConfig
	togetherOnce   sync.Once
)

func LoadTogetherConfig() *TogetherConfig {
	togetherOnce.Do(func() {
		model := os.Getenv("TOGETHER_MODEL")
		if model == "" {
			model = "meta-llama/Llama-3.3-70B-Instruct-Turbo"
		}
		baseURL := os.Getenv("TOGETHER_BASE_URL")
		if baseURL == "" {
			baseURL = "https://api.together.xyz"
		}
		togetherConfig = &TogetherConfig{
			APIKey:  os.Getenv("TOGETHER_API_KEY"),
			Model:   model,
			BaseURL: baseURL,
		}
	})
	return togetherConfig
}
