package explain

import (
	"context"
	"strings"
)

type explainerChain struct {
	primary  Explainer
	fallback Explainer
}

// WithFallback returns an explainer that tries the primary implementation and
// falls back when the primary is unavailable or produces an empty narrative.
func WithFallback(primary, fallback Explainer) Explainer {
	if primary == nil {
		return fallback
	}
	if fallback == nil {
		return primary
	}
	return &explainerChain{primary: primary, fallback: fallback}
}

func (c *explainerChain) Enabled() bool {
	if c == nil {
		return false
	}
	if c.primary != nil && c.primary.Enabled() {
		return true
	}
	return c.fallback != nil && c.fallback.Enabled()
}

func (c *explainerChain) Explain(ctx context.Context, in Input) (string, error) {
	if c == nil {
		return "", ErrDisabled
	}
	if c.primary != nil && c.primary.Enabled() {
		if narrative, err := c.primary.Explain(ctx, in); err == nil && strings.TrimSpace(narrative) != "" {
			return narrative, nil
		}
	}
	if c.fallback != nil && c.fallback.Enabled() {
		return c.fallback.Explain(ctx, in)
	}
	return "", ErrDisabled
}
