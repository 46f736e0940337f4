package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type (
	Container struct {
		App     *App     `validate:"required"`
		HTTP    *HTTP    `validate:"required"`
		API     *HTTP    `validate:"required"`
		Backend *Backend `validate:"required"`
		DB      *DB      `validate:"required"`
		Redis   *Redis   `validate:"required"`
		Session *Session `validate:"required"`
	}

	App struct {
		Name string
		Env  string `validate:"omitempty,oneof=development test production"`
	}

	HTTP struct {
		Env            string
		Port           string `validate:"required,numeric"`
		AllowedOrigins string
		URL            string
	}

	// Backend is the bicycles REST server the manager talks to.
	Backend struct {
		URL     string        `validate:"required,url"`
		Timeout time.Duration `validate:"gt=0"`
	}

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	Redis struct {
		Address  string
		Password string
		DB       int `validate:"min=0"`
	}

	Session struct {
		CookieName string        `validate:"required"`
		TTL        time.Duration `validate:"gt=0"`
		Secure     bool
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		// a missing .env is fine, the environment may already be set
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return FromEnv()
}

// FromEnv reads the container from the process environment without
// touching .env files.
func FromEnv() (*Container, error) {
	env := getEnv("APP_ENV", "development")

	app := &App{
		Name: getEnv("APP_NAME", "webike"),
		Env:  env,
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", "8080"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            env,
	}

	api := &HTTP{
		Port:           getEnv("API_PORT", "3001"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		URL:            os.Getenv("API_URL"),
		Env:            env,
	}

	backendTimeout, err := getDuration("BACKEND_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	backend := &Backend{
		URL:     getEnv("BACKEND_URL", "http://localhost:3001"),
		Timeout: backendTimeout,
	}

	db := &DB{
		Host:     os.Getenv("DB_HOST"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}

	redisDB, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	}

	sessionTTL, err := getDuration("SESSION_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	session := &Session{
		CookieName: getEnv("SESSION_COOKIE", "webike_session"),
		TTL:        sessionTTL,
		Secure:     env == "production",
	}

	c := &Container{
		App:     app,
		HTTP:    http,
		API:     api,
		Backend: backend,
		DB:      db,
		Redis:   redis,
		Session: session,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Enabled reports whether a PostgreSQL database is configured.
func (d *DB) Enabled() bool {
	return d.Host != ""
}

func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// Enabled reports whether a Redis server is configured.
func (r *Redis) Enabled() bool {
	return r.Address != ""
}

func (h *HTTP) Addr() string {
	return fmt.Sprintf("%s:%s", h.URL, h.Port)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
