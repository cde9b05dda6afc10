package catalog

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database wraps the GORM handle behind the catalog tables.
type Database struct {
	gorm *gorm.DB
}

// Open initializes the SQLite-backed catalog database at the provided path.
func Open(path string, silent bool) (*Database, error) {
	cfg := &gorm.Config{}
	if silent {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&Charity{}, &UserProfile{}, &Donation{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		logrus.WithError(err).Warn("enable WAL mode")
	}
	return &Database{gorm: db}, nil
}

// GORM exposes the raw gorm.DB handle.
func (d *Database) GORM() *gorm.DB {
	return d.gorm
}

// Close closes the underlying database connection.
func (d *Database) Close() error {
	if d == nil {
		return nil
	}
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SeedIfEmpty populates each catalog table that has no rows yet. Tables that
// already hold data are left untouched, so repeated startups never duplicate
// or drift the bootstrap rows.
func (d *Database) SeedIfEmpty() error {
	if d == nil {
		return errors.New("database is nil")
	}
	return d.gorm.Transaction(func(tx *gorm.DB) error {
		var charityCount int64
		if err := tx.Model(&Charity{}).Count(&charityCount).Error; err != nil {
			return fmt.Errorf("count charities: %w", err)
		}
		if charityCount == 0 {
			charities := seedCharities()
			if err := tx.Create(&charities).Error; err != nil {
				return fmt.Errorf("seed charities: %w", err)
			}
		}

		var userCount int64
		if err := tx.Model(&UserProfile{}).Count(&userCount).Error; err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		if userCount == 0 {
			users := seedUsers()
			if err := tx.Create(&users).Error; err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}

		var donationCount int64
		if err := tx.Model(&Donation{}).Count(&donationCount).Error; err != nil {
			return fmt.Errorf("count donations: %w", err)
		}
		if donationCount == 0 {
			donations := seedDonations()
			if err := tx.Create(&donations).Error; err != nil {
				return fmt.Errorf("seed donations: %w", err)
			}
		}
		return nil
	})
}

// Charities returns every charity row in insertion order.
func (d *Database) Charities() ([]Charity, error) {
	var rows []Charity
	if err := d.gorm.Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list charities: %w", err)
	}
	return rows, nil
}

// Users returns every stored user profile.
func (d *Database) Users() ([]UserProfile, error) {
	var rows []UserProfile
	if err := d.gorm.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return rows, nil
}

// Donations returns the full interaction history in insertion order.
func (d *Database) Donations() ([]Donation, error) {
	var rows []Donation
	if err := d.gorm.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return rows, nil
}
