package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LoadInvestmentProducts returns the investment product table. On the first
// run the default products are materialized to path with freshly generated
// ids; every later run loads that file verbatim so ids stay stable.
func LoadInvestmentProducts(path string) ([]InvestmentProduct, error) {
	if path == "" {
		return nil, errors.New("investment data path required")
	}

	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		var products []InvestmentProduct
		if err := json.Unmarshal(data, &products); err != nil {
			return nil, fmt.Errorf("unmarshal investment data: %w", err)
		}
		logrus.WithFields(logrus.Fields{
			"path":     path,
			"products": len(products),
		}).Info("loaded investment catalog")
		return products, nil
	case errors.Is(err, os.ErrNotExist):
		return materializeInvestmentProducts(path)
	default:
		return nil, fmt.Errorf("read investment data: %w", err)
	}
}

func materializeInvestmentProducts(path string) ([]InvestmentProduct, error) {
	products := defaultInvestmentProducts(uuid.NewString)
	payload, err := json.MarshalIndent(products, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshal investment data: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create investment data directory: %w", err)
		}
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return nil, fmt.Errorf("write investment data: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"path":     path,
		"products": len(products),
	}).Info("materialized investment catalog")
	return products, nil
}
