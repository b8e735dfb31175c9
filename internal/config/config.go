package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB          DBConfig
	Server      ServerConfig
	Redis       RedisConfig
	Logger      LoggerConfig
	JWT         JWTConfig
	GoogleOAuth GoogleOAuthConfig
	Generator   GeneratorConfig
	Poller      PollerConfig
	CacheTTLs   CacheTTLConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	FrontendURL  string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Level string
	Env   string
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// GeneratorConfig selects and configures the question generation backend.
type GeneratorConfig struct {
	Source         string // "http" or "llm"
	APIURL         string
	Timeout        time.Duration
	ForwardCookies bool
	LLMServer      string
	LLMModel       string
}

// PollerConfig holds the readiness poller defaults used by quizctl.
type PollerConfig struct {
	Timeout  time.Duration
	Interval time.Duration
}

type CacheTTLConfig struct {
	QuestionKey string
	PlayView    string
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := FromViper(v)
	applyEnvOverrides(cfg)
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.frontend_url", "http://localhost:3000")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("jwt.access_token_ttl", "15m")
	v.SetDefault("jwt.refresh_token_ttl", "168h")
	v.SetDefault("generator.source", "http")
	v.SetDefault("generator.timeout", "60s")
	v.SetDefault("generator.forward_cookies", false)
	v.SetDefault("generator.llm_model", "qwen3:0.6b")
	v.SetDefault("poller.timeout", "20s")
	v.SetDefault("poller.interval", "20s")
	v.SetDefault("cache_ttls.question_key", "100s")
	v.SetDefault("cache_ttls.play_view", "10m")
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			FrontendURL:  v.GetString("server.frontend_url"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		JWT: JWTConfig{
			SecretKey:       v.GetString("jwt.secret_key"),
			AccessTokenTTL:  v.GetDuration("jwt.access_token_ttl"),
			RefreshTokenTTL: v.GetDuration("jwt.refresh_token_ttl"),
		},
		GoogleOAuth: GoogleOAuthConfig{
			ClientID:     v.GetString("google_oauth.client_id"),
			ClientSecret: v.GetString("google_oauth.client_secret"),
			RedirectURL:  v.GetString("google_oauth.redirect_url"),
		},
		Generator: GeneratorConfig{
			Source:         v.GetString("generator.source"),
			APIURL:         v.GetString("generator.api_url"),
			Timeout:        v.GetDuration("generator.timeout"),
			ForwardCookies: v.GetBool("generator.forward_cookies"),
			LLMServer:      v.GetString("generator.llm_server"),
			LLMModel:       v.GetString("generator.llm_model"),
		},
		Poller: PollerConfig{
			Timeout:  v.GetDuration("poller.timeout"),
			Interval: v.GetDuration("poller.interval"),
		},
		CacheTTLs: CacheTTLConfig{
			QuestionKey: v.GetString("cache_ttls.question_key"),
			PlayView:    v.GetString("cache_ttls.play_view"),
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		cfg.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		cfg.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}
	if secret := os.Getenv("JWT_SECRET_KEY"); secret != "" {
		cfg.JWT.SecretKey = secret
	}
	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" {
		cfg.GoogleOAuth.ClientID = clientID
	}
	if clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET"); clientSecret != "" {
		cfg.GoogleOAuth.ClientSecret = clientSecret
	}
	if apiURL := os.Getenv("GENERATOR_API_URL"); apiURL != "" {
		cfg.Generator.APIURL = apiURL
	}
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		cfg.Generator.LLMServer = llmServer
	}
}

// GetDSN returns the go-ora connection URL.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}

// ParseTTLStringOrDefault parses a duration string, falling back to def when empty or invalid.
func (c *Config) ParseTTLStringOrDefault(ttl string, def time.Duration) time.Duration {
	if ttl == "" {
		return def
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
