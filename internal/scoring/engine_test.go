package scoring

import "impact-finance/backend/internal/catalog"

// stubNoise returns the same draw for every call, making jittered scores
// deterministic in tests.
type stubNoise struct {
	value float64
}

func (s stubNoise) Uniform(min, max float64) float64 {
	return s.value
}

func testCharities() []catalog.Charity {
	return []catalog.Charity{
		{ID: "charity1", Name: "Child Welfare Foundation", Category: "Child-Care",
			Description: "Provides education and healthcare to underprivileged children.",
			TrustScore:  95, Impact: "Helps 1,000+ children annually"},
		{ID: "charity2", Name: "Age-Old Blessings", Category: "Elderly-Care",
			Description: "Supports and cares for abandoned senior citizens.",
			TrustScore:  92, Impact: "Provides shelter to 200+ seniors"},
		{ID: "charity3", Name: "Green Earth Trust", Category: "Environment",
			Description: "Working on reforestation and wildlife preservation.",
			TrustScore:  88, Impact: "Planted 50,000 trees this year"},
		{ID: "charity4", Name: "Educate for India", Category: "Education",
			Description: "Building schools and providing scholarships in rural areas.",
			TrustScore:  91, Impact: "Empowers 500+ students per year"},
		{ID: "charity5", Name: "Hope for All Animals", Category: "Animal Welfare",
			Description: "Rescues and rehabilitates stray and injured animals.",
			TrustScore:  85, Impact: "Saved 300+ animals last month"},
	}
}

func testProducts() []catalog.InvestmentProduct {
	return []catalog.InvestmentProduct{
		{ID: "inv1", Name: "Tech Innovators Fund", Category: "Technology", Risk: "High", AICompatibility: 92},
		{ID: "inv2", Name: "Global Green Energy ETF", Category: "Renewables", Risk: "Medium", AICompatibility: 88},
		{ID: "inv3", Name: "Blue Chip Stock Portfolio", Category: "Diversified", Risk: "Low", AICompatibility: 95},
		{ID: "inv4", Name: "Emerging Markets Bond Fund", Category: "Bonds", Risk: "Medium", AICompatibility: 75},
	}
}

func testUsers() []catalog.UserProfile {
	users := []catalog.UserProfile{
		{ID: "user1", Name: "Alex", RiskProfile: "low"},
		{ID: "user2", Name: "Priya", RiskProfile: "medium"},
		{ID: "user3", Name: "Rahul", RiskProfile: "high"},
		{ID: "user4", Name: "Dev", RiskProfile: "medium"},
	}
	users[0].SetPreferredCauses([]string{"Child-Care", "Education"})
	users[1].SetPreferredCauses([]string{"Elderly-Care", "Environment"})
	users[2].SetPreferredCauses([]string{"Child-Care", "Environment"})
	users[3].SetPreferredCauses(nil)
	return users
}

func testDonations() []catalog.Donation {
	return []catalog.Donation{
		{UserID: "user1", CharityID: "charity1"},
		{UserID: "user1", CharityID: "charity4"},
		{UserID: "user2", CharityID: "charity2"},
		{UserID: "user2", CharityID: "charity3"},
		{UserID: "user3", CharityID: "charity1"},
		{UserID: "user3", CharityID: "charity3"},
	}
}

func testEngine(noise Noise) *Engine {
	c := catalog.New(testCharities(), testProducts(), testUsers(), testDonations())
	return NewEngine(c, noise)
}
