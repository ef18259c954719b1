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
)

const (
	defaultPath       = "."
	defaultStorageDir = ".starfund"

	// VNPay sandbox defaults. Real credentials are supplied through config
	// or environment; these only make the offline demo work out of the box.
	defaultVNPayPayURL     = "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"
	defaultVNPayTmnCode    = "2QXUI4J4"
	defaultVNPayHashSecret = "RAOEXHYFYPOIJDOQRIQYMOABEPJQVJWX"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// API is the remote platform endpoint. An empty baseUrl switches the
	// whole client into mock mode: every store resolves to the local
	// persistence backend and no network call is ever made.
	API struct {
		BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
		Timeout time.Duration `json:"timeout" yaml:"timeout"`
	} `json:"api" yaml:"api"`

	// Storage is where the client keeps its durable local state: the saved
	// session and, in mock mode, the projects overlay and investments ledger.
	Storage struct {
		Dir string `json:"dir" yaml:"dir"`
	} `json:"storage" yaml:"storage"`

	// Mock tunes the local persistence backend.
	Mock struct {
		// Latency is an artificial delay applied to local operations so the
		// loading states behave like the remote path.
		Latency time.Duration `json:"latency" yaml:"latency"`
	} `json:"mock" yaml:"mock"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	VNPay *VNPayConfig `json:"vnpay" yaml:"vnpay"`

	// QRCode tunes how payment URLs are rendered for scanning.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// QRCodeConfig defines QR code rendering settings.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// VNPayConfig defines the VNPay gateway settings used by the payment flow.
type VNPayConfig struct {
	PayURL     string `json:"payUrl" yaml:"payUrl"`
	TmnCode    string `json:"tmnCode" yaml:"tmnCode"`
	HashSecret string `json:"hashSecret" yaml:"hashSecret"`
	ReturnURL  string `json:"returnUrl" yaml:"returnUrl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// UseMock reports whether the client runs against the local persistence
// backend instead of the remote API. It is a pure function of configuration,
// never of call-site logic.
func (c *Config) UseMock() bool {
	return strings.TrimSpace(c.API.BaseURL) == ""
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if found {
		// Load YAML config file
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: API_BASEURL -> api.baseUrl (not api.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Env.ServiceName) == "" {
		cfg.Env.ServiceName = "starfund"
	}
	if strings.TrimSpace(cfg.Env.Log.Level) == "" {
		cfg.Env.Log.Level = "info"
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 30 * time.Second
	}
	if strings.TrimSpace(cfg.Storage.Dir) == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = defaultPath
		}
		cfg.Storage.Dir = filepath.Join(home, defaultStorageDir)
	}
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		// Mock mode still mints real signed tokens; an out-of-the-box secret
		// keeps the offline demo working without a config file.
		cfg.SecretKey.Access = "starfund-local-dev-secret"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.VNPay == nil {
		cfg.VNPay = &VNPayConfig{}
	}
	if cfg.VNPay.PayURL == "" {
		cfg.VNPay.PayURL = defaultVNPayPayURL
	}
	if cfg.VNPay.TmnCode == "" {
		cfg.VNPay.TmnCode = defaultVNPayTmnCode
	}
	if cfg.VNPay.HashSecret == "" {
		cfg.VNPay.HashSecret = defaultVNPayHashSecret
	}
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
