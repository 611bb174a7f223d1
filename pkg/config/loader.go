package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix scopes the environment variables read by the loader,
// e.g. FEATUREPREP_SEED sets seed.
const EnvPrefix = "FEATUREPREP_"

type SourceType string

const (
	SourceDefault SourceType = "default"
	SourceEnv     SourceType = "env"
	SourceCLI     SourceType = "cli"
)

// Loader builds a Config from defaults, the environment and command-line
// flags, in increasing order of precedence.
type Loader struct {
	koanf     *koanf.Koanf
	validator *validator.Validate
	environ   func() []string
	sources   map[string]SourceType
}

func NewLoader() *Loader {
	return &Loader{
		koanf:     koanf.New("."),
		validator: validator.New(),
		environ:   os.Environ,
		sources:   make(map[string]SourceType),
	}
}

// WithEnviron replaces os.Environ as the environment source.
func (l *Loader) WithEnviron(environ func() []string) *Loader {
	l.environ = environ
	return l
}

// Load returns the validated configuration. flags maps flag names to their
// textual values and should only hold flags the user actually set.
func (l *Loader) Load(flags map[string]string) (*Config, error) {
	l.koanf = koanf.New(".")
	l.sources = make(map[string]SourceType)

	if err := l.koanf.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	l.track(SourceDefault, nil)

	if err := l.loadEnvironment(); err != nil {
		return nil, err
	}

	if len(flags) > 0 {
		data := make(rawMap, len(flags))
		for name, value := range flags {
			data[flagKey(name)] = value
		}
		before := l.snapshot()
		if err := l.koanf.Load(data, nil); err != nil {
			return nil, fmt.Errorf("failed to apply flags: %w", err)
		}
		l.track(SourceCLI, before)
	}

	return l.unmarshalAndValidate()
}

// GetSource reports which layer provided key.
func (l *Loader) GetSource(key string) SourceType {
	if s, ok := l.sources[key]; ok {
		return s
	}
	return SourceDefault
}

func (l *Loader) loadEnvironment() error {
	before := l.snapshot()
	if err := l.koanf.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key string, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
		},
		EnvironFunc: l.environ,
	}), nil); err != nil {
		return fmt.Errorf("failed to load environment variables: %w", err)
	}
	l.track(SourceEnv, before)
	return nil
}

func (l *Loader) snapshot() map[string]any {
	keys := make(map[string]any)
	for _, key := range l.koanf.Keys() {
		keys[key] = fmt.Sprint(l.koanf.Get(key))
	}
	return keys
}

// track attributes every key that is new or changed since before to source.
func (l *Loader) track(source SourceType, before map[string]any) {
	for _, key := range l.koanf.Keys() {
		prev, existed := before[key]
		if !existed || prev != fmt.Sprint(l.koanf.Get(key)) {
			l.sources[key] = source
		}
	}
}

func (l *Loader) unmarshalAndValidate() (*Config, error) {
	var config Config
	if err := l.koanf.UnmarshalWithConf("", &config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &config,
			TagName:          "koanf",
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	config.CategoricalFeatures = trimList(config.CategoricalFeatures)
	config.DropColumns = trimList(config.DropColumns)

	if err := l.validator.Struct(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	if config.EncodeMode == "declared" && len(config.CategoricalFeatures) == 0 {
		return nil, fmt.Errorf("configuration validation failed: encode_mode declared needs categorical_features")
	}
	return &config, nil
}

// flagKey maps a flag name such as log-level to its key log_level.
func flagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// rawMap is a koanf.Provider adapter for already-parsed values.
type rawMap map[string]any

func (r rawMap) Read() (map[string]any, error) {
	return r, nil
}

func (r rawMap) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("ReadBytes not implemented")
}
