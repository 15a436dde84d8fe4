package entities

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultHostURL is the configured host when none is given.
	DefaultHostURL = httpsProtocol + DefaultHost
	// DefaultTimeoutMillis matches the connection timeout of the IDE plugin.
	DefaultTimeoutMillis = 5000

	AuthModeToken = "token"
	AuthModeNone  = "none"
)

// Settings is the user configuration: which server to talk to and how.
type Settings struct {
	Host          string `yaml:"host"       env:"PINGCODE_HOST"`       // URL of the PingCode server
	Token         string `yaml:"token"      env:"PINGCODE_TOKEN"`      // Inline, ${ENV_VAR}, or file path
	TimeoutMillis int    `yaml:"timeout_ms" env:"PINGCODE_TIMEOUT_MS"` // HTTP timeout
	LogFile       string `yaml:"log_file"   env:"PINGCODE_LOG_FILE"`   // Optional rotating log file
}

// SettingsOverrides carries values given on the command line. Empty fields
// leave the file and environment values in place.
type SettingsOverrides struct {
	Host  string
	Token string
}

// configFileNames are tried in order inside every search directory.
var configFileNames = []string{ //nolint:gochecknoglobals // fixed lookup table
	".pingcode.yaml",
	".pingcode.yml",
	"pingcode.yaml",
	"pingcode.yml",
}

// tokenReference matches a ${NAME} placeholder inside a token value.
var tokenReference = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used without any configuration.
func NewDefaultSettings() *Settings {
	return &Settings{
		Host:          DefaultHostURL,
		TimeoutMillis: DefaultTimeoutMillis,
	}
}

// NewSettings loads the settings without command line overrides.
func NewSettings(path string) (*Settings, error) {
	return LoadSettings(path, SettingsOverrides{})
}

// LoadSettings layers the configuration sources, lowest precedence first:
// defaults, the YAML file at path (skipped when empty), PINGCODE_* variables
// and overrides. The token is resolved and the result validated last, so
// every source goes through the same checks.
func LoadSettings(path string, overrides SettingsOverrides) (*Settings, error) {
	settings := NewDefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
	}

	if envErr := cleanenv.ReadEnv(settings); envErr != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", envErr)
	}

	if overrides.Host != "" {
		settings.Host = overrides.Host
	}
	if overrides.Token != "" {
		settings.Token = overrides.Token
	}

	settings.Token = resolveToken(settings.Token)
	if settings.Host == "" {
		settings.Host = DefaultHostURL
	}
	if settings.TimeoutMillis == 0 {
		settings.TimeoutMillis = DefaultTimeoutMillis
	}

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// DefaultConfigDirs lists where FindConfigFile looks when called without
// directories: the working directory, its .config, then the same two under
// the home directory when it is known.
func DefaultConfigDirs() []string {
	dirs := []string{".", ".config"}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home, filepath.Join(home, ".config"))
	}
	return dirs
}

// FindConfigFile returns the first pingcode config file found in dirs, or in
// DefaultConfigDirs when dirs is empty.
func FindConfigFile(dirs ...string) (string, error) {
	if len(dirs) == 0 {
		dirs = DefaultConfigDirs()
	}

	for _, dir := range dirs {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("config file not found in %s", strings.Join(dirs, ", "))
}

// Timeout is the HTTP timeout as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutMillis) * time.Millisecond
}

// APIEndpoint derives the REST endpoint from the configured host.
func (s *Settings) APIEndpoint() APIEndpoint {
	return NewAPIEndpoint(s.Host)
}

// AuthMode selects how requests are authenticated.
func (s *Settings) AuthMode() string {
	if s.Token == "" {
		return AuthModeNone
	}
	return AuthModeToken
}

// HostURL is the configured host without a trailing slash.
func (s *Settings) HostURL() string {
	return StripTrailingSlash(strings.TrimSpace(s.Host))
}

func (s *Settings) validate() error {
	if s.TimeoutMillis < 0 {
		return fmt.Errorf("timeout_ms must be positive, got %d", s.TimeoutMillis)
	}
	if _, err := ParseServerPath(s.HostURL()); err != nil {
		return fmt.Errorf("invalid host %q: %w", s.Host, err)
	}
	return nil
}

// resolveToken turns the configured token into the value sent to the server.
// ${NAME} references are replaced by the environment; a value naming a
// regular file is replaced by the trimmed file content.
func resolveToken(raw string) string {
	if raw == "" {
		return ""
	}
	token := expandTokenReferences(raw)
	if content, ok := readTokenFile(token); ok {
		return content
	}
	return token
}

func expandTokenReferences(raw string) string {
	return tokenReference.ReplaceAllStringFunc(raw, func(reference string) string {
		name := tokenReference.FindStringSubmatch(reference)[1]
		value, set := os.LookupEnv(name)
		if !set || value == "" {
			logger.Warnf("Token references %q, which is not set", name)
			return ""
		}
		return value
	})
}

func readTokenFile(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warnf("Token file %q is not readable: %v", path, err)
		return "", false
	}
	logger.Debugf("Token read from %q", path)
	return strings.TrimSpace(string(data)), true
}
