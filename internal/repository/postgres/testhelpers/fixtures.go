package testhelpers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sqlx.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// ActivityCodes returns the stored activity codes of a resource, excluded codes included
func ActivityCodes(db *sqlx.DB, recResourceID string) ([]int, error) {
	var codes []int
	err := db.SelectContext(context.Background(), &codes,
		"SELECT recreation_activity_code FROM recreation_activity WHERE rec_resource_id = $1 ORDER BY recreation_activity_code",
		recResourceID)
	if err != nil {
		return nil, fmt.Errorf("get activity codes for %s: %w", recResourceID, err)
	}
	return codes, nil
}
