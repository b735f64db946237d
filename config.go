package mint

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FullscreenMode selects how a window goes fullscreen.
type FullscreenMode uint8

const (
	FullscreenDisabled FullscreenMode = iota // windowed
	FullscreenPrimary                        // fullscreen on the primary monitor
	FullscreenMonitor                        // fullscreen on the monitor named in Fullscreen.Monitor
)

var fullscreenModeNames = [...]string{"disabled", "primary", "monitor"}

func (m FullscreenMode) String() string {
	if int(m) < len(fullscreenModeNames) {
		return fullscreenModeNames[m]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (m FullscreenMode) MarshalText() ([]byte, error) {
	if int(m) >= len(fullscreenModeNames) {
		return nil, errors.Wrapf(ErrInvalidConfig, "fullscreen mode %d", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *FullscreenMode) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range fullscreenModeNames {
		if s == name {
			*m = FullscreenMode(i)
			return nil
		}
	}
	return errors.Wrapf(ErrInvalidConfig, "unknown fullscreen mode %q", s)
}

// Fullscreen is the fullscreen configuration of a window.
type Fullscreen struct {
	Mode FullscreenMode `yaml:"mode" toml:"mode"`
	// Monitor is the exact monitor name used with FullscreenMonitor.
	Monitor string `yaml:"monitor,omitempty" toml:"monitor,omitempty"`
}

// FullscreenOnMonitor returns a Fullscreen targeting the named monitor.
func FullscreenOnMonitor(name string) Fullscreen {
	return Fullscreen{Mode: FullscreenMonitor, Monitor: name}
}

// Config holds the options used when creating a window.
type Config struct {
	Title      string     `yaml:"title" toml:"title"`
	Size       Size       `yaml:"size" toml:"size"`
	MinSize    *Size      `yaml:"min_size,omitempty" toml:"min_size,omitempty"`
	MaxSize    *Size      `yaml:"max_size,omitempty" toml:"max_size,omitempty"`
	Maximized  bool       `yaml:"maximized" toml:"maximized"`
	Resizable  bool       `yaml:"resizable" toml:"resizable"`
	Fullscreen Fullscreen `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool       `yaml:"vsync" toml:"vsync"`
	// MSAA is the multisample count. Must be zero (off) or a power of two.
	MSAA int `yaml:"msaa" toml:"msaa"`
	// BatchCapacity is the vertex capacity of the batch buffer. Zero selects
	// DefaultBatchCapacity.
	BatchCapacity int `yaml:"batch_capacity,omitempty" toml:"batch_capacity,omitempty"`
	// Debug logs per-frame render stats at debug level.
	Debug bool `yaml:"debug" toml:"debug"`
}

// DefaultConfig returns a resizable 640x480 window with v-sync on.
func DefaultConfig() Config {
	return Config{
		Size:      Size{Width: 640, Height: 480},
		Resizable: true,
		VSync:     true,
	}
}

// Validate reports the first problem found in c, wrapped around
// ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validateSize("size", c.Size); err != nil {
		return err
	}
	if c.MinSize != nil {
		if err := validateSize("min size", *c.MinSize); err != nil {
			return err
		}
	}
	if c.MaxSize != nil {
		if err := validateSize("max size", *c.MaxSize); err != nil {
			return err
		}
	}
	if c.MinSize != nil && c.MaxSize != nil &&
		(c.MinSize.Width > c.MaxSize.Width || c.MinSize.Height > c.MaxSize.Height) {
		return errors.Wrapf(ErrInvalidConfig, "min size %vx%v exceeds max size %vx%v",
			c.MinSize.Width, c.MinSize.Height, c.MaxSize.Width, c.MaxSize.Height)
	}
	if c.MSAA < 0 || c.MSAA&(c.MSAA-1) != 0 {
		return errors.Wrapf(ErrInvalidConfig, "msaa %d is not a power of two", c.MSAA)
	}
	if c.BatchCapacity != 0 {
		if err := validateBatchCapacity(c.BatchCapacity); err != nil {
			return err
		}
	}
	switch c.Fullscreen.Mode {
	case FullscreenDisabled, FullscreenPrimary:
	case FullscreenMonitor:
		if c.Fullscreen.Monitor == "" {
			return errors.Wrap(ErrInvalidConfig, "fullscreen monitor name is empty")
		}
	default:
		return errors.Wrapf(ErrInvalidConfig, "fullscreen mode %d", c.Fullscreen.Mode)
	}
	return nil
}

func validateSize(name string, s Size) error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "%s %vx%v must be positive", name, s.Width, s.Height)
	}
	return nil
}

// GraphicsOptions returns the graphics options selected by c.
func (c Config) GraphicsOptions() GraphicsOptions {
	return GraphicsOptions{BatchCapacity: c.BatchCapacity, Debug: c.Debug}
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file on top of
// DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "mint: read config")
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return ParseConfig(data, format)
}

// ParseConfig decodes data in the given format ("yaml", "yml" or "toml") on
// top of DefaultConfig and validates the result.
func ParseConfig(data []byte, format string) (Config, error) {
	cfg := DefaultConfig()
	var err error
	switch format {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &cfg)
	case "toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return Config{}, errors.Wrapf(ErrInvalidConfig, "unsupported config format %q", format)
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "mint: parse %s config", format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
