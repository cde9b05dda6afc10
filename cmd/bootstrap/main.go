package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"impact-finance/backend/internal/catalog"
	"impact-finance/backend/internal/similarity"
)

// Offline catalog bootstrap: seeds the database, materializes the investment
// side file and reports what a server starting against the same paths would
// load. Useful for provisioning a data directory ahead of deployment.
func main() {
	dbPath := flag.String("db", "data/catalog.db", "path to the catalog database")
	investPath := flag.String("investments", "data/investment_data.json", "path to the investment side file")
	silent := flag.Bool("silent", true, "suppress gorm query logging")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		logrus.Fatalf("create data directory: %v", err)
	}

	db, err := catalog.Open(*dbPath, *silent)
	if err != nil {
		logrus.Fatalf("open catalog database: %v", err)
	}
	defer db.Close()

	cat, err := catalog.Load(db, *investPath)
	if err != nil {
		logrus.Fatalf("load catalog: %v", err)
	}

	docs := make([]similarity.Document, 0, len(cat.Charities()))
	for _, charity := range cat.Charities() {
		docs = append(docs, similarity.Document{ID: charity.ID, Text: charity.FeatureText()})
	}
	idx := similarity.Build(docs)

	logrus.WithFields(logrus.Fields{
		"db":               *dbPath,
		"investments":      *investPath,
		"charities":        len(cat.Charities()),
		"products":         len(cat.Products()),
		"similarity_terms": idx.VocabularySize(),
	}).Info("catalog bootstrap complete")
}
