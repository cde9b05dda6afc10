package explain

import (
	"context"
	"errors"
	"fmt"
)

// ErrDisabled signals that no explainer backend is configured.
var ErrDisabled = errors.New("explainer disabled")

// Input carries the signals behind one recommendation so an explainer can
// phrase why it was chosen.
type Input struct {
	ItemName        string
	Category        string
	MatchScore      int
	ConfidenceLevel int
	Reasons         []string
	// Kind distinguishes the donation and investment paths.
	Kind string
}

const (
	KindDonation   = "donation"
	KindInvestment = "investment"
)

// Explainer produces a human-readable narrative for a recommendation.
type Explainer interface {
	Enabled() bool
	Explain(ctx context.Context, in Input) (string, error)
}

// TemplateExplainer renders the fixed reason templates. It is the always-on
// fallback behind the optional AI client.
type TemplateExplainer struct{}

// Enabled always reports true; templates need no configuration.
func (TemplateExplainer) Enabled() bool { return true }

// Explain renders the canonical template for the recommendation kind.
func (TemplateExplainer) Explain(_ context.Context, in Input) (string, error) {
	if in.Kind == KindInvestment {
		return fmt.Sprintf("Based on your preferences, this %s investment is a strong match.", in.Category), nil
	}
	return fmt.Sprintf("High alignment with your preferences in %s.", in.Category), nil
}
