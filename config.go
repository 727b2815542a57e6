package filestation

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/joeshaw/envdecode"
)

// DefaultEndpointPath is the entry point every request is sent to.
const DefaultEndpointPath = "webapi/entry.cgi"

// Config holds everything a Client needs. It is read, never modified, by
// the client.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string

	UseCookies         bool // also send the session as a _sid parameter
	UseHTTPS           bool
	InsecureSkipVerify bool

	// Endpoints replaces the built-in registry, for private API families.
	Endpoints    Registry
	EndpointPath string

	// ParseErrors resolves error codes to messages. When false errors only
	// carry their code.
	ParseErrors bool

	Debug          bool
	Logger         *slog.Logger
	HTTPClient     *http.Client
	UploadProgress UploadProgressFunc
}

// DefaultConfig returns a Config with the NAS defaults filled in.
func DefaultConfig() Config {
	return Config{
		Port:         5000,
		UseCookies:   true,
		EndpointPath: DefaultEndpointPath,
		ParseErrors:  true,
	}
}

// BaseURL returns scheme://host:port for this configuration.
func (c Config) BaseURL() string {
	scheme := "http"
	if c.UseHTTPS {
		scheme = "https"
	}
	return scheme + "://" + c.Host + ":" + strconv.Itoa(c.Port)
}

type envConfig struct {
	Host               string `env:"SYNOLOGY_HOST"`
	Port               int    `env:"SYNOLOGY_PORT,default=5000"`
	Username           string `env:"SYNOLOGY_USERNAME"`
	Password           string `env:"SYNOLOGY_PASSWORD"`
	UseCookies         bool   `env:"SYNOLOGY_USE_COOKIES,default=true"`
	UseHTTPS           bool   `env:"SYNOLOGY_HTTPS,default=false"`
	InsecureSkipVerify bool   `env:"SYNOLOGY_INSECURE,default=false"`
	EndpointPath       string `env:"SYNOLOGY_ENDPOINT_PATH,default=webapi/entry.cgi"`
	ParseErrors        bool   `env:"SYNOLOGY_PARSE_ERRORS,default=true"`
	Debug              bool   `env:"SYNOLOGY_DEBUG,default=false"`
}

// ConfigFromEnv builds a Config from SYNOLOGY_* environment variables.
func ConfigFromEnv() (Config, error) {
	var ec envConfig
	if err := envdecode.Decode(&ec); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, err
	}
	return Config{
		Host:               ec.Host,
		Port:               ec.Port,
		Username:           ec.Username,
		Password:           ec.Password,
		UseCookies:         ec.UseCookies,
		UseHTTPS:           ec.UseHTTPS,
		InsecureSkipVerify: ec.InsecureSkipVerify,
		EndpointPath:       ec.EndpointPath,
		ParseErrors:        ec.ParseErrors,
		Debug:              ec.Debug,
	}, nil
}
