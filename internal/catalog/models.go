package catalog

import (
	"encoding/json"
	"strings"
	"time"
)

// Charity is a donation target loaded once at startup and never mutated.
type Charity struct {
	ID                string `gorm:"primaryKey;size:64" json:"id"`
	Name              string `gorm:"size:256" json:"name"`
	Type              string `gorm:"size:64" json:"type"`
	Category          string `gorm:"size:128;index" json:"category"`
	Description       string `gorm:"type:text" json:"description"`
	TrustScore        int    `json:"trust_score"`
	TransparencyScore int    `json:"transparency_score"`
	EfficiencyScore   int    `json:"efficiency_score"`
	Impact            string `gorm:"size:256" json:"impact"`
	Location          string `gorm:"size:128" json:"location"`
	AICompatibility   int    `json:"ai_compatibility"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// FeatureText concatenates the descriptive fields that feed the similarity index.
func (c Charity) FeatureText() string {
	return strings.Join([]string{c.Category, c.Description, c.Impact}, " ")
}

// InvestmentProduct is a row of the investment side file. The JSON field names
// are the persisted schema and must stay stable across restarts.
type InvestmentProduct struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Category        string  `json:"category"`
	Risk            string  `json:"risk"`
	Volatility      float64 `json:"volatility"`
	AnalystRating   float64 `json:"analystRating"`
	ProjectedGrowth string  `json:"projectedGrowth"`
	Description     string  `json:"description"`
	AICompatibility float64 `json:"aiCompatibility"`
}

// UserProfile holds a user's declared preferences and risk tolerance.
type UserProfile struct {
	ID                  string `gorm:"primaryKey;size:64"`
	Name                string `gorm:"size:128"`
	PreferredCausesJSON string `gorm:"type:text"`
	RiskProfile         string `gorm:"size:32"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// SetPreferredCauses stores the cause list as JSON.
func (u *UserProfile) SetPreferredCauses(causes []string) {
	if causes == nil {
		u.PreferredCausesJSON = "[]"
		return
	}
	payload, _ := json.Marshal(causes)
	u.PreferredCausesJSON = string(payload)
}

// PreferredCauses returns the decoded cause list.
func (u UserProfile) PreferredCauses() []string {
	if strings.TrimSpace(u.PreferredCausesJSON) == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(u.PreferredCausesJSON), &out); err != nil {
		return nil
	}
	return out
}

// Donation records a single past donation. Never negative evidence.
type Donation struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:64;index"`
	CharityID string `gorm:"size:64;index"`
	CreatedAt time.Time
}
