package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode   string `mapstructure:"mode"`
	Dotenv string `mapstructure:"dotenv"`
	Gemini struct {
		Model       string  `mapstructure:"model"`
		Temperature float32 `mapstructure:"temperature"`
		APIKey      string  `mapstructure:"-"`
	} `mapstructure:"gemini"`
	Store struct {
		URL            string        `mapstructure:"-"`
		Database       string        `mapstructure:"database"`
		Collection     string        `mapstructure:"collection"`
		ConnectTimeout time.Duration `mapstructure:"connectTimeout"`
	} `mapstructure:"store"`
	Retry struct {
		MaxAttempts int           `mapstructure:"maxAttempts"`
		BaseDelay   time.Duration `mapstructure:"baseDelay"`
		MaxJitter   time.Duration `mapstructure:"maxJitter"`
	} `mapstructure:"retry"`
	Output struct {
		File string `mapstructure:"file"`
	} `mapstructure:"output"`
}

// InitConfig loads config.yml from disk when present, falling back to the
// embedded copy. Secrets (store connection string, Gemini key) only ever come
// from the environment.
func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	err := v.ReadInConfig()
	if err != nil {
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Store.URL = os.Getenv("DBURL")
	config.Gemini.APIKey = os.Getenv("GOOGLE_API")
	return config, nil
}
