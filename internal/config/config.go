package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort          = "5000"
	defaultDBHost        = "cluster0.xj7qmnz.mongodb.net"
	defaultDBName        = "bikes4u"
	defaultTokenDuration = 8 * time.Hour
	defaultCacheTTL      = 15 * time.Minute
	defaultCurrency      = "usd"
)

type (
	Container struct {
		App     *App
		Token   *Token
		DB      *DB
		HTTP    *HTTP
		Redis   *Redis
		Payment *Payment
	}

	App struct {
		Name string
		Env  string
	}

	Token struct {
		Secret   string
		Duration time.Duration
	}

	DB struct {
		URI      string
		Host     string
		User     string
		Password string
		Name     string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
		TTL      time.Duration
	}

	Payment struct {
		SecretKey string
		Currency  string
	}
)

// New reads the configuration from the environment. Outside production a
// .env file is loaded first when one exists.
func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	app := &App{
		Name: getEnv("APP_NAME", "bikes4u"),
		Env:  os.Getenv("APP_ENV"),
	}

	tokenDuration, err := getDuration("TOKEN_DURATION", defaultTokenDuration)
	if err != nil {
		return nil, err
	}
	token := &Token{
		Secret:   getEnv("TOKEN_SECRET", os.Getenv("ACCESS_TOKEN_SECRET")),
		Duration: tokenDuration,
	}
	if token.Secret == "" {
		return nil, errors.New("TOKEN_SECRET is required")
	}

	db := &DB{
		URI:      os.Getenv("MONGO_URI"),
		Host:     getEnv("DB_HOST", defaultDBHost),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     getEnv("DB_NAME", defaultDBName),
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", getEnv("PORT", defaultPort)),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            os.Getenv("APP_ENV"),
	}

	cacheTTL, err := getDuration("CACHE_TTL", defaultCacheTTL)
	if err != nil {
		return nil, err
	}
	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
		TTL:      cacheTTL,
	}

	payment := &Payment{
		SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		Currency:  getEnv("PAYMENT_CURRENCY", defaultCurrency),
	}

	return &Container{
		App:     app,
		Token:   token,
		DB:      db,
		HTTP:    http,
		Redis:   redis,
		Payment: payment,
	}, nil
}

// ConnectionURI returns MONGO_URI when set, otherwise the SRV URI built
// from the credentials and host.
func (d *DB) ConnectionURI() string {
	if d.URI != "" {
		return d.URI
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func (h *HTTP) Addr() string {
	return fmt.Sprintf("%s:%s", h.URL, h.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
