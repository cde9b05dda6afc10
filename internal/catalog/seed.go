package catalog

// Bootstrap rows for the charity, user and donation tables. Inserted once by
// SeedIfEmpty; after that the database copy is authoritative.

func seedCharities() []Charity {
	return []Charity{
		{
			ID: "charity1", Name: "Child Welfare Foundation", Type: "trust", Category: "Child-Care",
			Description: "Provides education and healthcare to underprivileged children.",
			TrustScore:  95, TransparencyScore: 90, EfficiencyScore: 88,
			Impact: "Helps 1,000+ children annually", Location: "Mumbai", AICompatibility: 90,
		},
		{
			ID: "charity2", Name: "Age-Old Blessings", Type: "old-age", Category: "Elderly-Care",
			Description: "Supports and cares for abandoned senior citizens.",
			TrustScore:  92, TransparencyScore: 85, EfficiencyScore: 91,
			Impact: "Provides shelter to 200+ seniors", Location: "Chennai", AICompatibility: 85,
		},
		{
			ID: "charity3", Name: "Green Earth Trust", Type: "trust", Category: "Environment",
			Description: "Working on reforestation and wildlife preservation.",
			TrustScore:  88, TransparencyScore: 95, EfficiencyScore: 80,
			Impact: "Planted 50,000 trees this year", Location: "Bengaluru", AICompatibility: 95,
		},
		{
			ID: "charity4", Name: "Educate for India", Type: "trust", Category: "Education",
			Description: "Building schools and providing scholarships in rural areas.",
			TrustScore:  91, TransparencyScore: 87, EfficiencyScore: 93,
			Impact: "Empowers 500+ students per year", Location: "Delhi", AICompatibility: 92,
		},
		{
			ID: "charity5", Name: "Hope for All Animals", Type: "trust", Category: "Animal Welfare",
			Description: "Rescues and rehabilitates stray and injured animals.",
			TrustScore:  85, TransparencyScore: 88, EfficiencyScore: 75,
			Impact: "Saved 300+ animals last month", Location: "Pune", AICompatibility: 80,
		},
	}
}

func seedUsers() []UserProfile {
	users := []UserProfile{
		{ID: "user1", Name: "Alex", RiskProfile: "low"},
		{ID: "user2", Name: "Priya", RiskProfile: "medium"},
		{ID: "user3", Name: "Rahul", RiskProfile: "high"},
	}
	users[0].SetPreferredCauses([]string{"Child-Care", "Education"})
	users[1].SetPreferredCauses([]string{"Elderly-Care", "Environment"})
	users[2].SetPreferredCauses([]string{"Child-Care", "Environment"})
	return users
}

func seedDonations() []Donation {
	return []Donation{
		{UserID: "user1", CharityID: "charity1"},
		{UserID: "user1", CharityID: "charity4"},
		{UserID: "user2", CharityID: "charity2"},
		{UserID: "user2", CharityID: "charity3"},
		{UserID: "user3", CharityID: "charity1"},
		{UserID: "user3", CharityID: "charity3"},
	}
}

func defaultInvestmentProducts(newID func() string) []InvestmentProduct {
	return []InvestmentProduct{
		{
			ID: newID(), Name: "Tech Innovators Fund", Type: "mutual-fund", Category: "Technology",
			Risk: "High", Volatility: 15, AnalystRating: 4.5, ProjectedGrowth: "18-25%",
			Description: "Invests in high-growth technology companies.", AICompatibility: 92,
		},
		{
			ID: newID(), Name: "Global Green Energy ETF", Type: "etf", Category: "Renewables",
			Risk: "Medium", Volatility: 12, AnalystRating: 4.0, ProjectedGrowth: "10-15%",
			Description: "Tracks leading companies in the renewable energy sector.", AICompatibility: 88,
		},
		{
			ID: newID(), Name: "Blue Chip Stock Portfolio", Type: "stock", Category: "Diversified",
			Risk: "Low", Volatility: 8, AnalystRating: 4.8, ProjectedGrowth: "5-8%",
			Description: "A collection of stable, well-established companies.", AICompatibility: 95,
		},
		{
			ID: newID(), Name: "Emerging Markets Bond Fund", Type: "mutual-fund", Category: "Bonds",
			Risk: "Medium", Volatility: 10, AnalystRating: 3.5, ProjectedGrowth: "7-10%",
			Description: "Fixed-income investments in developing economies.", AICompatibility: 75,
		},
	}
}
