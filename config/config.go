package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	Port             string
	BindAddress      string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	CategoryCacheTTL time.Duration
	LogLevel         string
	GinMode          string
	SeedCategories   bool
	JWTSecret        string
	JWTTTL           time.Duration
	AdminUsername    string
	AdminPassHash    string
}

var defaults = map[string]any{
	"PORT":                "5000",
	"BIND_ADDRESS":        "",
	"DB_HOST":             "localhost",
	"DB_PORT":             "5432",
	"DB_USER":             "postgres",
	"DB_PASSWORD":         "postgres",
	"DB_NAME":             "trivia",
	"REDIS_HOST":          "localhost",
	"REDIS_PORT":          "6379",
	"REDIS_PASSWORD":      "",
	"CATEGORY_CACHE_TTL":  "10m",
	"LOG_LEVEL":           "info",
	"GIN_MODE":            "release",
	"SEED_CATEGORIES":     false,
	"JWT_SECRET":          "",
	"JWT_TTL":             "12h",
	"ADMIN_USERNAME":      "admin",
	"ADMIN_PASSWORD_HASH": "",
}

// Load reads an optional .env file and then the process environment.
// Environment variables win over .env entries.
func Load() *Config {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Port:             v.GetString("PORT"),
		BindAddress:      v.GetString("BIND_ADDRESS"),
		DBHost:           v.GetString("DB_HOST"),
		DBPort:           v.GetString("DB_PORT"),
		DBUser:           v.GetString("DB_USER"),
		DBPassword:       v.GetString("DB_PASSWORD"),
		DBName:           v.GetString("DB_NAME"),
		RedisHost:        v.GetString("REDIS_HOST"),
		RedisPort:        v.GetString("REDIS_PORT"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		CategoryCacheTTL: v.GetDuration("CATEGORY_CACHE_TTL"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		GinMode:          v.GetString("GIN_MODE"),
		SeedCategories:   v.GetBool("SEED_CATEGORIES"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTTTL:           v.GetDuration("JWT_TTL"),
		AdminUsername:    v.GetString("ADMIN_USERNAME"),
		AdminPassHash:    v.GetString("ADMIN_PASSWORD_HASH"),
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.BindAddress + ":" + c.Port
}

// AuthEnabled reports whether mutating routes are guarded by a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func InitRedis(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       0,
	})
}
