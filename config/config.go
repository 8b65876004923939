package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type SysConfig struct {
	Appid    string `mapstructure:"appid" yaml:"appid"`
	Location string `mapstructure:"location" yaml:"location"`
	Workdir  string `mapstructure:"workdir" yaml:"workdir"`
	Debug    bool   `mapstructure:"debug" yaml:"debug"`
}

type WebConfig struct {
	Host        string `mapstructure:"host" yaml:"host"`
	Port        int    `mapstructure:"port" yaml:"port"`
	JwtSecret   string `mapstructure:"jwt_secret" yaml:"jwt_secret"`
	FrontendURL string `mapstructure:"frontend_url" yaml:"frontend_url"`
	AdminURL    string `mapstructure:"admin_url" yaml:"admin_url"`
}

type DBConfig struct {
	Type string `mapstructure:"type" yaml:"type"`
	URL  string `mapstructure:"url" yaml:"url"`
}

type LogConfig struct {
	Mode       string `mapstructure:"mode" yaml:"mode"`
	FileEnable bool   `mapstructure:"file_enable" yaml:"file_enable"`
	Filename   string `mapstructure:"filename" yaml:"filename"`
}

type SmtpConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Username string `mapstructure:"username" yaml:"username"`
	Password string `mapstructure:"password" yaml:"password"`
	From     string `mapstructure:"from" yaml:"from"`
}

type AppConfig struct {
	System   SysConfig  `mapstructure:"system" yaml:"system"`
	Web      WebConfig  `mapstructure:"web" yaml:"web"`
	Database DBConfig   `mapstructure:"database" yaml:"database"`
	Logger   LogConfig  `mapstructure:"logger" yaml:"logger"`
	Smtp     SmtpConfig `mapstructure:"smtp" yaml:"smtp"`
}

// CorsOrigins returns the allowed cross-origin callers: the fixed local
// development origins plus FRONTEND_URL and ADMIN_URL when configured.
// Empty values are dropped.
func (c *AppConfig) CorsOrigins() []string {
	origins := []string{
		"http://localhost:8080",
		"http://localhost:5174",
		"http://localhost:3001",
		c.Web.FrontendURL,
		c.Web.AdminURL,
	}
	result := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin != "" {
			result = append(result, origin)
		}
	}
	return result
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("system.appid", "QueenKoba")
	v.SetDefault("system.location", "Africa/Nairobi")
	v.SetDefault("system.workdir", "/var/queenkoba")
	v.SetDefault("system.debug", false)
	v.SetDefault("web.host", "0.0.0.0")
	v.SetDefault("web.port", 5000)
	v.SetDefault("web.jwt_secret", "queenkoba-super-secret-jwt-key")
	v.SetDefault("web.frontend_url", "")
	v.SetDefault("web.admin_url", "")
	v.SetDefault("database.type", "postgres")
	v.SetDefault("database.url", "postgresql://localhost/queenkoba")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.file_enable", false)
	v.SetDefault("logger.filename", "")
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "info@queenkoba.com")
}

// bindEnv wires the hosting platform environment surface. The dashboard sets
// DATABASE_URL, JWT_SECRET_KEY, FRONTEND_URL, ADMIN_URL and PORT; everything
// else comes from the optional config file.
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("web.jwt_secret", "JWT_SECRET_KEY")
	_ = v.BindEnv("web.frontend_url", "FRONTEND_URL")
	_ = v.BindEnv("web.admin_url", "ADMIN_URL")
	_ = v.BindEnv("web.port", "PORT")
	_ = v.BindEnv("logger.mode", "LOG_MODE")
	_ = v.BindEnv("smtp.host", "SMTP_HOST")
	_ = v.BindEnv("smtp.port", "SMTP_PORT")
	_ = v.BindEnv("smtp.username", "SMTP_USERNAME")
	_ = v.BindEnv("smtp.password", "SMTP_PASSWORD")
	_ = v.BindEnv("smtp.from", "SMTP_FROM")
}

// LoadConfig reads the optional YAML config file and overlays environment
// variables. A .env file in the working directory is loaded first when present.
func LoadConfig(cfile string) (*AppConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	if cfile != "" {
		if _, err := os.Stat(cfile); err == nil {
			v.SetConfigFile(cfile)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrap(err, "read config file")
			}
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if cfg.System.Workdir != "" {
		_ = os.MkdirAll(cfg.System.Workdir, 0o755)
		_ = os.MkdirAll(filepath.Join(cfg.System.Workdir, "logs"), 0o755)
	}
	return &cfg, nil
}
