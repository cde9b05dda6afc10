package explain

import (
	"context"
	"errors"
	"testing"
)

type stubExplainer struct {
	enabled   bool
	narrative string
	err       error
}

func (s stubExplainer) Enabled() bool { return s.enabled }

func (s stubExplainer) Explain(context.Context, Input) (string, error) {
	return s.narrative, s.err
}

func TestWithFallback(t *testing.T) {
	in := Input{ItemName: "Green Earth Trust", Category: "Environment", Kind: KindDonation}

	tests := []struct {
		name     string
		primary  Explainer
		fallback Explainer
		expected string
	}{
		{"primary wins", stubExplainer{enabled: true, narrative: "from primary"}, TemplateExplainer{}, "from primary"},
		{"primary error falls back", stubExplainer{enabled: true, err: errors.New("boom")}, TemplateExplainer{},
			"High alignment with your preferences in Environment."},
		{"primary disabled falls back", stubExplainer{enabled: false}, TemplateExplainer{},
			"High alignment with your preferences in Environment."},
		{"empty narrative falls back", stubExplainer{enabled: true, narrative: "  "}, TemplateExplainer{},
			"High alignment with your preferences in Environment."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chain := WithFallback(tc.primary, tc.fallback)
			got, err := chain.Explain(context.Background(), in)
			if err != nil {
				t.Fatalf("explain: %v", err)
			}
			if got != tc.expected {
				t.Fatalf("expected %q got %q", tc.expected, got)
			}
		})
	}
}

func TestTemplateExplainerInvestment(t *testing.T) {
	got, err := TemplateExplainer{}.Explain(context.Background(), Input{
		ItemName: "Tech Innovators Fund",
		Category: "technology",
		Kind:     KindInvestment,
	})
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if got != "Based on your preferences, this technology investment is a strong match." {
		t.Fatalf("unexpected narrative: %q", got)
	}
}

func TestClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(Config{}); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled got %v", err)
	}
}
