package config

import (
	"os"

	"github.com/hjson/hjson-go/v4"
	"github.com/pkg/errors"
)

// Settings for the command line tool. They can come from an hjson file, and
// flags given on the command line take precedence over the file.
type Config struct {
	Depth            float64 `json:"depth"`
	WindingEpsilon   float64 `json:"windingEpsilon"`
	NormalizeWinding bool    `json:"normalizeWinding"`
	FilterDegenerate bool    `json:"filterDegenerate"`
	ConvexFastPath   bool    `json:"convexFastPath"`
	RenderScale      float64 `json:"renderScale"`
}

func Default() *Config {
	return &Config{
		Depth:            1,
		WindingEpsilon:   1e-5,
		NormalizeWinding: true,
		FilterDegenerate: true,
		RenderScale:      50,
	}
}

// Load a config file on top of the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open config file %v", path)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := hjson.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Depth <= 0 {
		return errors.Errorf("depth must be positive, got %v", c.Depth)
	}
	if c.WindingEpsilon < 0 {
		return errors.Errorf("windingEpsilon must not be negative, got %v", c.WindingEpsilon)
	}
	if c.RenderScale <= 0 {
		return errors.Errorf("renderScale must be positive, got %v", c.RenderScale)
	}
	return nil
}
