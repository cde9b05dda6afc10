package catalog

// Catalog is the immutable read-only view handed to every scoring call. It is
// built once after the database is seeded and never written to afterwards, so
// concurrent requests need no locking.
type Catalog struct {
	charities []Charity
	products  []InvestmentProduct
	users     map[string]UserProfile
	donations map[string][]string
}

// New assembles a catalog from loaded tables. Slice order is preserved; it is
// the tie-break order for every downstream ranking.
func New(charities []Charity, products []InvestmentProduct, users []UserProfile, donations []Donation) *Catalog {
	c := &Catalog{
		charities: charities,
		products:  products,
		users:     make(map[string]UserProfile, len(users)),
		donations: make(map[string][]string),
	}
	for _, u := range users {
		c.users[u.ID] = u
	}
	for _, d := range donations {
		c.donations[d.UserID] = append(c.donations[d.UserID], d.CharityID)
	}
	return c
}

// Load seeds the database if needed and reads every table into memory,
// including the side-file investment catalog.
func Load(db *Database, investmentDataPath string) (*Catalog, error) {
	if err := db.SeedIfEmpty(); err != nil {
		return nil, err
	}
	charities, err := db.Charities()
	if err != nil {
		return nil, err
	}
	users, err := db.Users()
	if err != nil {
		return nil, err
	}
	donations, err := db.Donations()
	if err != nil {
		return nil, err
	}
	products, err := LoadInvestmentProducts(investmentDataPath)
	if err != nil {
		return nil, err
	}
	return New(charities, products, users, donations), nil
}

// Charities returns the charity table in catalog order.
func (c *Catalog) Charities() []Charity {
	return c.charities
}

// Products returns the investment product table in catalog order.
func (c *Catalog) Products() []InvestmentProduct {
	return c.products
}

// User looks up a stored profile by id.
func (c *Catalog) User(id string) (UserProfile, bool) {
	u, ok := c.users[id]
	return u, ok
}

// DonationsOf returns the charity ids the user has donated to, in history order.
func (c *Catalog) DonationsOf(userID string) []string {
	return c.donations[userID]
}

// DonationsByUser returns the full interaction history grouped by user id.
func (c *Catalog) DonationsByUser() map[string][]string {
	return c.donations
}

// DonatedSet returns the user's donation history as a set for membership checks.
func (c *Catalog) DonatedSet(userID string) map[string]struct{} {
	ids := c.donations[userID]
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
