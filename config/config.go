package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath        = "."
	defaultSessionTTL  = 24 * time.Hour
	defaultStorageFile = "guardian.db"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Storage selects and configures the key-value backend for contacts, profile and alert log
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Location tunes the one-shot and watch position requests
	Location *LocationConfig `json:"location" yaml:"location"`

	// Motion tunes fall detection
	Motion *MotionConfig `json:"motion" yaml:"motion"`

	// Voice configures the remote live audio session
	Voice *VoiceConfig `json:"voice" yaml:"voice"`

	// Device configures the phone bridge socket
	Device *DeviceConfig `json:"device" yaml:"device"`

	// SOS configures the alert overlay and haptic feedback
	SOS *SOSConfig `json:"sos" yaml:"sos"`

	// PubSub configuration for alert event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for caregiver push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Relay configuration for the alert relay worker
	Relay *RelayConfig `json:"relay" yaml:"relay"`

	// QRCode configuration for the medical ID card
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Archive configuration for incident reports
	Archive *ArchiveConfig `json:"archive" yaml:"archive"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines session token settings
type AuthConfig struct {
	SessionTTL time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
	OTPTTL     time.Duration `json:"otpTTL" yaml:"otpTTL"`
}

// StorageConfig defines the persistence backend
type StorageConfig struct {
	// Driver is one of "sqlite", "postgres", "memory" or "redis"
	Driver string `json:"driver" yaml:"driver"`

	// SQLitePath is the database file for the sqlite driver, ":memory:" is allowed
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

// RedisConfig defines the redis connection for the redis driver
type RedisConfig struct {
	Addr        string        `json:"addr" yaml:"addr"`
	Password    string        `json:"password" yaml:"password"`
	DB          int           `json:"db" yaml:"db"`
	KeyPrefix   string        `json:"keyPrefix" yaml:"keyPrefix"`
	DialTimeout time.Duration `json:"dialTimeout" yaml:"dialTimeout"`
}

// LocationConfig defines position request options
type LocationConfig struct {
	HighAccuracyTimeout time.Duration `json:"highAccuracyTimeout" yaml:"highAccuracyTimeout"`
	FallbackTimeout     time.Duration `json:"fallbackTimeout" yaml:"fallbackTimeout"`
	WatchTimeout        time.Duration `json:"watchTimeout" yaml:"watchTimeout"`
	WatchMaximumAge     time.Duration `json:"watchMaximumAge" yaml:"watchMaximumAge"`
}

// MotionConfig defines fall detection parameters
type MotionConfig struct {
	// Threshold is the acceleration magnitude (m/s², gravity included) above which a sample counts as a fall
	Threshold  float64 `json:"threshold" yaml:"threshold"`
	WindowSize int     `json:"windowSize" yaml:"windowSize"`
}

// VoiceConfig defines the live audio session
type VoiceConfig struct {
	APIKey        string        `json:"apiKey" yaml:"apiKey"`
	Endpoint      string        `json:"endpoint" yaml:"endpoint"`
	Model         string        `json:"model" yaml:"model"`
	SampleRate    int           `json:"sampleRate" yaml:"sampleRate"`
	FrameSize     int           `json:"frameSize" yaml:"frameSize"`
	SendQueueSize int           `json:"sendQueueSize" yaml:"sendQueueSize"`
	SetupTimeout  time.Duration `json:"setupTimeout" yaml:"setupTimeout"`
}

// DeviceConfig defines the phone bridge socket
type DeviceConfig struct {
	MaxMessageSize int64         `json:"maxMessageSize" yaml:"maxMessageSize"`
	PingInterval   time.Duration `json:"pingInterval" yaml:"pingInterval"`
	PongWait       time.Duration `json:"pongWait" yaml:"pongWait"`
	SendBufferSize int           `json:"sendBufferSize" yaml:"sendBufferSize"`
}

// SOSConfig defines the SOS overlay
type SOSConfig struct {
	Countdown       time.Duration `json:"countdown" yaml:"countdown"`
	EmergencyNumber string        `json:"emergencyNumber" yaml:"emergencyNumber"`
}

// PubSubConfig defines Pub/Sub configuration for alert event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the relay worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// RelayConfig defines the alert relay worker
type RelayConfig struct {
	CaregiverTokens []string `json:"caregiverTokens" yaml:"caregiverTokens"`
	VerifyPushAuth  bool     `json:"verifyPushAuth" yaml:"verifyPushAuth"`
	PushAudience    string   `json:"pushAudience" yaml:"pushAudience"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// ArchiveConfig defines where incident reports are written
type ArchiveConfig struct {
	// BucketURL is a gocloud blob URL such as "file:///var/lib/guardian/incidents" or "mem://"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

type MetricsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment overrides: STORAGE_SQLITEPATH -> storage.sqlitePath
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills sections that every deployment needs
func applyDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = defaultSessionTTL
	}
	if cfg.Auth.OTPTTL <= 0 {
		cfg.Auth.OTPTTL = 5 * time.Minute
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if strings.TrimSpace(cfg.Storage.Driver) == "" {
		cfg.Storage.Driver = "sqlite"
	}
	if cfg.Storage.Driver == "sqlite" && strings.TrimSpace(cfg.Storage.SQLitePath) == "" {
		cfg.Storage.SQLitePath = defaultStorageFile
	}
}

func findConfigFile(searchPaths []string, currEnv string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
