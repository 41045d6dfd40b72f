package shell

import (
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"deedles.dev/linked"
)

// overwriting fileSystem lets tests use an in-memory filesystem
var fileSystem fs.FS = osFS{}

type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// List kinds accepted in a Config.
const (
	KindSingle = "single"
	KindDouble = "double"
)

// Config holds the shell settings read from a TOML file.
type Config struct {
	Kind     string `toml:"kind"`
	Limit    int    `toml:"limit"`
	LogLevel string `toml:"log_level"`
	Color    bool   `toml:"color"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Kind:     KindDouble,
		LogLevel: "info",
		Color:    true,
	}
}

// LoadConfig reads the config file at path on top of the defaults. An
// empty path or a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}

	data, err := fs.ReadFile(fileSystem, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, errors.Wrapf(err, "read config %v", path)
	}

	if _, err := toml.Decode(string(data), &c); err != nil {
		return c, errors.Wrapf(err, "parse config %v", path)
	}
	return c, c.Validate()
}

// Validate reports the first invalid setting in c.
func (c Config) Validate() error {
	switch c.Kind {
	case KindSingle, KindDouble:
	default:
		return errors.Errorf("unknown list kind %q", c.Kind)
	}

	if c.Limit < 0 {
		return errors.Errorf("negative node limit %d", c.Limit)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// NewList returns an empty list of the configured kind and limit.
func NewList(c Config) List {
	switch c.Kind {
	case KindSingle:
		var ls linked.Single
		ls.SetLimit(c.Limit)
		return &ls
	default:
		var ls linked.Double
		ls.SetLimit(c.Limit)
		return &ls
	}
}
