package main

import (
	"strconv"

	"github.com/osuushi/polyextrude/internal/config"
	"github.com/pkg/errors"
)

// Flag values that override the config file. Numeric flags are kept as
// strings so that an empty value means "not given", and any value that is
// given, good or bad, reaches validation.
type overrides struct {
	noNormalize    bool
	convex         bool
	keepDegenerate bool
	windingEpsilon string
	depth          string
	renderScale    string
}

func applyOverrides(cfg *config.Config, o overrides) error {
	if o.noNormalize {
		cfg.NormalizeWinding = false
	}
	if o.convex {
		cfg.ConvexFastPath = true
	}
	if o.keepDegenerate {
		cfg.FilterDegenerate = false
	}
	for _, f := range []struct {
		name  string
		value string
		dst   *float64
	}{
		{"winding-epsilon", o.windingEpsilon, &cfg.WindingEpsilon},
		{"depth", o.depth, &cfg.Depth},
		{"scale", o.renderScale, &cfg.RenderScale},
	} {
		if f.value == "" {
			continue
		}
		v, err := strconv.ParseFloat(f.value, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid --%s", f.name)
		}
		*f.dst = v
	}
	return cfg.Validate()
}
