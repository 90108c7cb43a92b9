package app

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
)

type Config struct {
	Region     string `env:"COGNITO_REGION,required"`       // Required: pool region, e.g. ap-southeast-2
	UserPoolID string `env:"COGNITO_USER_POOL_ID,required"` // Required: pool id, e.g. ap-southeast-2_AbCdEf123

	JWKSBaseURL         string        `env:"JWKS_BASE_URL"`                     // Optional: download keys from a mirror instead of the regional host
	KeyFetchTimeout     time.Duration `env:"KEY_FETCH_TIMEOUT,default=10s"`     // Bound on a single key download
	WarmKeys            bool          `env:"WARM_KEYS,default=true"`            // Download keys before serving
	Env                 string        `env:"ENV,default=dev"`                   // Environment (dev, staging, prod)
	LogLevel            string        `env:"LOG_LEVEL,default=info"`            // Log level (debug, info, warn, error)
	LogFormat           string        `env:"LOG_FORMAT,default=json"`           // Log format (json, text)
	Port                int           `env:"PORT,default=8080"`                 // HTTP server port
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD,default=10s"` // Graceful shutdown timeout
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
