// Package sources loads the raw metric snapshots that feed aggregation:
// CSV files on disk, per-club report documents, or tabs of a Google
// spreadsheet (see pkg/clients/sheetsclient).
//
// A missing source file is treated as an empty record set and logged; a
// malformed row fails the whole source load, since a silently-coerced
// value would corrupt a cumulative sum.
package sources

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/campuslife/club-awards/pkg/core/metrics"
)

// File names of the CSV snapshots inside the data directory
const (
	SocialFile     = "instagram_monthly.csv"
	MessagingFile  = "whatsapp_monthly.csv"
	AttendanceFile = "attendance_events.csv"
	AwardWinsFile  = "awards_won.csv"
)

// record is one CSV row with header-based field access
type record struct {
	path   string
	line   int
	fields map[string]string
}

func (r record) get(column string) (string, error) {
	value, ok := r.fields[column]
	if !ok {
		return "", fmt.Errorf("%s line %d: missing column %q", r.path, r.line, column)
	}
	return value, nil
}

func (r record) getInt(column string) (int, error) {
	raw, err := r.get(column)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s line %d: column %q is not an integer: %q", r.path, r.line, column, raw)
	}
	return value, nil
}

func (r record) getInt64(column string) (int64, error) {
	raw, err := r.get(column)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s line %d: column %q is not an integer: %q", r.path, r.line, column, raw)
	}
	return value, nil
}

func (r record) getFloat(column string) (float64, error) {
	raw, err := r.get(column)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s line %d: column %q is not a number: %q", r.path, r.line, column, raw)
	}
	return value, nil
}

// readRecords reads all rows of a headered CSV file. A missing file yields
// an empty slice, not an error.
func readRecords(path string, logger *zap.Logger) ([]record, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		logger.Warn("Source file not found, treating as empty", zap.String("path", path))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err == io.EOF {
		logger.Warn("Source file is empty", zap.String("path", path))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	var records []record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s line %d: %w", path, line, err)
		}

		fields := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(row) {
				fields[column] = row[i]
			}
		}
		records = append(records, record{path: path, line: line, fields: fields})
	}

	return records, nil
}

// ReadSocial reads the social media snapshot (posts/likes/reach per club
// per period)
func ReadSocial(path string, logger *zap.Logger) ([]metrics.SocialRow, error) {
	records, err := readRecords(path, logger)
	if err != nil {
		return nil, err
	}

	rows := make([]metrics.SocialRow, 0, len(records))
	for _, rec := range records {
		var row metrics.SocialRow
		if row.ClubID, err = rec.getInt64("club_id"); err != nil {
			return nil, err
		}
		if row.Posts, err = rec.getInt("posts"); err != nil {
			return nil, err
		}
		if row.Likes, err = rec.getInt("likes"); err != nil {
			return nil, err
		}
		if row.Reach, err = rec.getInt("reach"); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadMessaging reads the messaging snapshot (volume and sentiment per
// club per period)
func ReadMessaging(path string, logger *zap.Logger) ([]metrics.MessagingRow, error) {
	records, err := readRecords(path, logger)
	if err != nil {
		return nil, err
	}

	rows := make([]metrics.MessagingRow, 0, len(records))
	for _, rec := range records {
		var row metrics.MessagingRow
		if row.ClubID, err = rec.getInt64("club_id"); err != nil {
			return nil, err
		}
		if row.Messages, err = rec.getInt("messages"); err != nil {
			return nil, err
		}
		if row.Sentiment, err = rec.getFloat("sentiment"); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadAttendance reads the offline event attendance snapshot
func ReadAttendance(path string, logger *zap.Logger) ([]metrics.AttendanceRow, error) {
	records, err := readRecords(path, logger)
	if err != nil {
		return nil, err
	}

	rows := make([]metrics.AttendanceRow, 0, len(records))
	for _, rec := range records {
		var row metrics.AttendanceRow
		if row.ClubID, err = rec.getInt64("club_id"); err != nil {
			return nil, err
		}
		if row.Attendees, err = rec.getInt("attendees"); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadAwardWins reads the prior award win occurrences (one row per win)
func ReadAwardWins(path string, logger *zap.Logger) ([]metrics.AwardWinRow, error) {
	records, err := readRecords(path, logger)
	if err != nil {
		return nil, err
	}

	rows := make([]metrics.AwardWinRow, 0, len(records))
	for _, rec := range records {
		var row metrics.AwardWinRow
		if row.ClubID, err = rec.getInt64("club_id"); err != nil {
			return nil, err
		}
		// Name and level are informational; absence is fine
		row.Name = rec.fields["award_name"]
		row.Level = rec.fields["level"]
		rows = append(rows, row)
	}
	return rows, nil
}
