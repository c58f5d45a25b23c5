package sources

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ReportFileName returns the expected report document name for a club
func ReportFileName(clubID int64) string {
	return fmt.Sprintf("club_%d.txt", clubID)
}

// ReadReports loads the optional free-text report documents for the given
// clubs from the reports directory. Clubs without a report document are
// simply absent from the result. A missing directory yields an empty map.
func ReadReports(dir string, clubIDs []int64, logger *zap.Logger) (map[int64][]string, error) {
	reports := make(map[int64][]string)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		logger.Warn("Reports directory not found, treating as empty", zap.String("dir", dir))
		return reports, nil
	}

	for _, clubID := range clubIDs {
		path := filepath.Join(dir, ReportFileName(clubID))
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read report %s: %w", path, err)
		}
		reports[clubID] = append(reports[clubID], string(data))
	}

	return reports, nil
}
