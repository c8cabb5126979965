package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, data stores, token
// issuing, third-party integrations and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the default level of the environment (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`
	// Version is reported by the health endpoint
	Version string `env:"VERSION" env-default:"dev" yaml:"version"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"1m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits JSON and multipart request bodies
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"6291456" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// PublicURL is the externally visible base URL, used for OAuth redirects
		PublicURL string `env:"HTTP_PUBLIC_URL" env-default:"http://localhost:8080" yaml:"publicURL"`
		// FrontendURL is where the browser lands after Google sign-in
		FrontendURL string `env:"HTTP_FRONTEND_URL" env-default:"http://localhost:5173" yaml:"frontendURL"`
		// CorsAllowedOrigins lists origins allowed to call the API with credentials
		CorsAllowedOrigins []string `env:"HTTP_CORS_ALLOWED_ORIGINS" env-default:"http://localhost:5173" env-separator:"," yaml:"corsAllowedOrigins"` //nolint: lll
		// TrustedProxies lists CIDRs or addresses of reverse proxies whose
		// X-Forwarded-For and X-Real-IP headers are honored
		TrustedProxies []string `env:"HTTP_TRUSTED_PROXIES" env-separator:"," yaml:"trustedProxies"`
		// EnableDebug exposes pprof and the queue UI
		EnableDebug bool `env:"HTTP_ENABLE_DEBUG" env-default:"false" yaml:"enableDebug"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"arbeit" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis holds the cache connection settings
	Redis struct {
		URL             string        `env:"REDIS_URL" env-default:"redis://localhost:6379/0" yaml:"url"`
		PoolSize        int           `env:"REDIS_POOL_SIZE" env-default:"10" yaml:"poolSize"`
		MinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" env-default:"2" yaml:"minIdleConns"`
		PoolTimeout     time.Duration `env:"REDIS_POOL_TIMEOUT" env-default:"4s" yaml:"poolTimeout"`
		ConnMaxIdleTime time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" env-default:"5m" yaml:"connMaxIdleTime"`
		// Prefix namespaces every key written by the service
		Prefix string `env:"REDIS_PREFIX" env-default:"arbeit" yaml:"prefix"`
	} `yaml:"redis"`

	// JWT configures access and refresh tokens
	JWT struct {
		// PrivateKey is a PEM encoded RSA private key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PrivateKeyFile is read when PrivateKey is empty
		PrivateKeyFile string `env:"JWT_PRIVATE_KEY_FILE" env-default:"" yaml:"privateKeyFile"`
		// PublicKey is a PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PublicKeyFile is read when PublicKey is empty
		PublicKeyFile string        `env:"JWT_PUBLIC_KEY_FILE" env-default:"" yaml:"publicKeyFile"`
		Issuer        string        `env:"JWT_ISSUER" env-default:"arbeit" yaml:"issuer"`
		AccessTTL     time.Duration `env:"JWT_ACCESS_TTL" env-default:"15s" yaml:"accessTTL"`
		RefreshTTL    time.Duration `env:"JWT_REFRESH_TTL" env-default:"45s" yaml:"refreshTTL"`
		// SecureCookies forces the Secure cookie flag. Production always sets it.
		SecureCookies bool `env:"JWT_SECURE_COOKIES" env-default:"false" yaml:"secureCookies"`
	} `yaml:"jwt"`

	// OTP configures company e-mail verification codes
	OTP struct {
		TTL         time.Duration `env:"OTP_TTL" env-default:"10m" yaml:"ttl"`
		VerifiedTTL time.Duration `env:"OTP_VERIFIED_TTL" env-default:"30m" yaml:"verifiedTTL"`
		MaxAttempts int           `env:"OTP_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
	} `yaml:"otp"`

	// RateLimit configures token buckets per client IP
	RateLimit struct {
		Enabled bool `env:"RATE_LIMIT_ENABLED" env-default:"true" yaml:"enabled"`
		// Auth applies to login, register and refresh
		AuthPerMinute int `env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"30" yaml:"authPerMinute"`
		AuthBurst     int `env:"RATE_LIMIT_AUTH_BURST" env-default:"10" yaml:"authBurst"`
		// OTP applies to sending verification codes
		OTPPerMinute int `env:"RATE_LIMIT_OTP_PER_MINUTE" env-default:"3" yaml:"otpPerMinute"`
		OTPBurst     int `env:"RATE_LIMIT_OTP_BURST" env-default:"3" yaml:"otpBurst"`
		// AI applies to scanner and mentorship endpoints
		AIPerMinute int `env:"RATE_LIMIT_AI_PER_MINUTE" env-default:"10" yaml:"aiPerMinute"`
		AIBurst     int `env:"RATE_LIMIT_AI_BURST" env-default:"5" yaml:"aiBurst"`
	} `yaml:"rateLimit"`

	// Jobs configures the job board listing
	Jobs struct {
		// ListCacheTTL is how long the public list of active jobs is cached
		ListCacheTTL time.Duration `env:"JOBS_LIST_CACHE_TTL" env-default:"1m" yaml:"listCacheTTL"`
	} `yaml:"jobs"`

	// Applications configures application submission
	Applications struct {
		// MaxResumeBytes limits uploaded résumés
		MaxResumeBytes int64 `env:"APPLICATIONS_MAX_RESUME_BYTES" env-default:"5242880" yaml:"maxResumeBytes"`
	} `yaml:"applications"`

	// Gemini configures the generative model used by the scanner and mentorship
	Gemini struct {
		APIKey      string        `env:"GEMINI_API_KEY" env-default:"" yaml:"apiKey"`
		Model       string        `env:"GEMINI_MODEL" env-default:"gemini-2.5-flash" yaml:"model"`
		Timeout     time.Duration `env:"GEMINI_TIMEOUT" env-default:"45s" yaml:"timeout"`
		Temperature float64       `env:"GEMINI_TEMPERATURE" env-default:"0.7" yaml:"temperature"`
		MaxTokens   int           `env:"GEMINI_MAX_TOKENS" env-default:"4096" yaml:"maxTokens"`
	} `yaml:"gemini"`

	// Mail configures outgoing e-mail
	Mail struct {
		// Driver is either "gmail" or "log"
		Driver string `env:"MAIL_DRIVER" env-default:"log" yaml:"driver"`
		From   string `env:"MAIL_FROM" env-default:"" yaml:"from"`
		// CredentialsJSON is the OAuth client JSON of the sending account
		CredentialsJSON string `env:"MAIL_GMAIL_CREDENTIALS_JSON" env-default:"" yaml:"gmailCredentialsJSON"`
		RefreshToken    string `env:"MAIL_GMAIL_REFRESH_TOKEN" env-default:"" yaml:"gmailRefreshToken"`
		// SendsPerSecond paces deliveries of a single worker process
		SendsPerSecond float64 `env:"MAIL_SENDS_PER_SECOND" env-default:"5" yaml:"sendsPerSecond"`
		MaxAttempts    int     `env:"MAIL_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// DedupPeriod prevents sending the same notification twice
		DedupPeriod time.Duration `env:"MAIL_DEDUP_PERIOD" env-default:"24h" yaml:"dedupPeriod"`
	} `yaml:"mail"`

	// Google configures candidate sign-in with Google
	Google struct {
		ClientID     string `env:"GOOGLE_CLIENT_ID" env-default:"" yaml:"clientID"`
		ClientSecret string `env:"GOOGLE_CLIENT_SECRET" env-default:"" yaml:"clientSecret"`
		// StateTTL bounds the time between redirect and callback
		StateTTL time.Duration `env:"GOOGLE_STATE_TTL" env-default:"10m" yaml:"stateTTL"`
	} `yaml:"google"`

	// Worker configures background task processing
	Worker struct {
		Enabled    bool `env:"WORKER_ENABLED" env-default:"true" yaml:"enabled"`
		MaxWorkers int  `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file falls back to environment variables only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}
	}

	if err := cfg.readKeyFiles(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// readKeyFiles fills the JWT keys from their files when they are not set inline.
func (c *Config) readKeyFiles() error {
	for _, key := range []struct {
		value *string
		file  string
	}{
		{&c.JWT.PrivateKey, c.JWT.PrivateKeyFile},
		{&c.JWT.PublicKey, c.JWT.PublicKeyFile},
	} {
		if *key.value != "" || key.file == "" {
			continue
		}

		data, err := os.ReadFile(key.file)
		if err != nil {
			return fmt.Errorf("could not read jwt key file: %w", err)
		}
		*key.value = string(data)
	}

	return nil
}
