package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Postgres       PostgresConfig
	GoogleCalendar GoogleCalendarConfig
	Scheduling     SchedulingConfig
	RateLimit      RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN builds a keyword/value connection string for the pgx stdlib driver.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// SchedulingConfig holds the availability scan policy. Times are interpreted
// in the named IANA timezone.
type SchedulingConfig struct {
	Timezone           string
	WorkDayStartHour   int
	WorkDayEndHour     int
	GranularityMinutes int
	HorizonDays        int
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.ssl_mode")
	if dbPassword := viper.GetString("postgres_password"); dbPassword != "" {
		cfg.Postgres.Password = dbPassword
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Scheduling.Timezone = viper.GetString("scheduling.timezone")
	cfg.Scheduling.WorkDayStartHour = viper.GetInt("scheduling.work_day_start_hour")
	cfg.Scheduling.WorkDayEndHour = viper.GetInt("scheduling.work_day_end_hour")
	cfg.Scheduling.GranularityMinutes = viper.GetInt("scheduling.granularity_minutes")
	cfg.Scheduling.HorizonDays = viper.GetInt("scheduling.horizon_days")

	cfg.RateLimit.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Scheduling.WorkDayStartHour >= c.Scheduling.WorkDayEndHour {
		return fmt.Errorf("scheduling.work_day_start_hour (%d) must be before scheduling.work_day_end_hour (%d)",
			c.Scheduling.WorkDayStartHour, c.Scheduling.WorkDayEndHour)
	}
	if c.Scheduling.GranularityMinutes <= 0 {
		return fmt.Errorf("scheduling.granularity_minutes must be positive")
	}
	if c.Scheduling.HorizonDays <= 0 {
		return fmt.Errorf("scheduling.horizon_days must be positive")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "interviews")
	viper.SetDefault("postgres.ssl_mode", "disable")

	viper.SetDefault("google_calendar.credentials_path", "google-credentials.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("scheduling.timezone", "Asia/Kolkata")
	viper.SetDefault("scheduling.work_day_start_hour", 9)
	viper.SetDefault("scheduling.work_day_end_hour", 18)
	viper.SetDefault("scheduling.granularity_minutes", 15)
	viper.SetDefault("scheduling.horizon_days", 7)

	viper.SetDefault("rate_limit.requests_per_minute", 60)
	viper.SetDefault("rate_limit.burst", 10)
}
