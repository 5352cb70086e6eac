package config

import (
	"os"
	"strings"
	"time"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/helper"

	ozzo "github.com/go-ozzo/ozzo-validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var envFiles = map[string]string{
	"development": "config/.env.dev",
	"staging":     "config/.env.staging",
	"production":  "config/.env.production",
}

type PostgresConfig struct {
	Host     string
	User     string
	Name     string
	Password string
	Port     string
	Schema   string
	SSLMode  string
}

type Config struct {
	AppEnv      string
	Port        string
	StoreDriver string

	MongoURI      string
	MongoDatabase string

	Postgres PostgresConfig

	Timezone           string
	StaticDir          string
	ViewsDir           string
	CORSAllowedOrigins []string

	LogLevel  string
	LogToFile bool
}

// Load reads the env file for APP_ENV (development when unset) and then the
// process environment, which always wins over file values.
func Load() (Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
		_ = os.Setenv("APP_ENV", env)
	}

	if envPath, ok := envFiles[env]; ok && helper.CheckIfFileExists(envPath) {
		if err := godotenv.Load(envPath); err != nil {
			return Config{}, err
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		AppEnv:        env,
		Port:          v.GetString("PORT"),
		StoreDriver:   strings.ToLower(v.GetString("STORE_DRIVER")),
		MongoURI:      v.GetString("MONGO_URI"),
		MongoDatabase: v.GetString("MONGO_DATABASE"),
		Postgres: PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			User:     v.GetString("DB_USER"),
			Name:     v.GetString("DB_NAME"),
			Password: v.GetString("DB_PASSWORD"),
			Port:     v.GetString("DB_PORT"),
			Schema:   v.GetString("DB_SCHEMA"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
		},
		Timezone:           v.GetString("APP_TIMEZONE"),
		StaticDir:          v.GetString("STATIC_DIR"),
		ViewsDir:           v.GetString("VIEWS_DIR"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogToFile:          v.GetBool("LOG_TO_FILE"),
	}

	return cfg, cfg.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("STORE_DRIVER", DriverMongo)
	v.SetDefault("MONGO_DATABASE", "exercise_tracker")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SCHEMA", "public")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("APP_TIMEZONE", "UTC")
	v.SetDefault("STATIC_DIR", "public")
	v.SetDefault("VIEWS_DIR", "views")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_TO_FILE", true)
}

func (c Config) Validate() error {
	rules := []*ozzo.FieldRules{
		ozzo.Field(&c.Port, ozzo.Required),
		ozzo.Field(&c.StoreDriver, ozzo.Required, ozzo.In(DriverMongo, DriverPostgres, DriverMemory)),
		ozzo.Field(&c.Timezone, ozzo.By(func(value interface{}) error {
			_, err := time.LoadLocation(c.Timezone)
			return err
		})),
	}

	switch c.StoreDriver {
	case DriverMongo:
		rules = append(rules,
			ozzo.Field(&c.MongoURI, ozzo.Required),
			ozzo.Field(&c.MongoDatabase, ozzo.Required),
		)
	case DriverPostgres:
		rules = append(rules,
			ozzo.Field(&c.Postgres, ozzo.By(func(value interface{}) error {
				return ozzo.ValidateStruct(&c.Postgres,
					ozzo.Field(&c.Postgres.Host, ozzo.Required),
					ozzo.Field(&c.Postgres.User, ozzo.Required),
					ozzo.Field(&c.Postgres.Name, ozzo.Required),
				)
			})),
		)
	}

	return ozzo.ValidateStruct(&c, rules...)
}

// Location resolves Timezone, falling back to UTC for an empty name.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// PostgresDSN builds a key/value DSN the way the pgx driver expects it. Every
// value is single quoted so passwords may contain spaces or quotes.
func (c Config) PostgresDSN() string {
	p := c.Postgres
	pairs := [][2]string{
		{"host", p.Host},
		{"user", p.User},
		{"dbname", p.Name},
		{"password", p.Password},
		{"port", p.Port},
		{"sslmode", p.SSLMode},
		{"TimeZone", "UTC"},
		{"search_path", p.Schema},
	}

	parts := make([]string, 0, len(pairs))
	for _, kv := range pairs {
		parts = append(parts, kv[0]+"="+quoteDSNValue(kv[1]))
	}
	return strings.Join(parts, " ")
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteDSNValue(value string) string {
	return "'" + dsnEscaper.Replace(value) + "'"
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
