package sheetsclient

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/campuslife/club-awards/internal/config"
	"github.com/campuslife/club-awards/pkg/core/metrics"
	"github.com/campuslife/club-awards/pkg/sources"
)

// Expected column names per metrics tab. The tabs mirror the CSV snapshot
// headers so the same spreadsheet can be exported to disk unchanged.
var (
	socialFields     = []string{"club_id", "posts", "likes", "reach"}
	messagingFields  = []string{"club_id", "messages", "sentiment"}
	attendanceFields = []string{"club_id", "attendees"}
	awardWinFields   = []string{"club_id"}
)

// MetricsLoader loads the metric snapshots from the configured spreadsheet.
// Report documents have no spreadsheet representation, so they are still
// read from the reports directory on disk.
type MetricsLoader struct {
	Client  *Client
	Cfg     *config.Config
	ClubIDs []int64
	Logger  *zap.Logger
}

// Load fetches and parses the four metrics tabs, then attaches the on-disk
// report documents. A malformed tab fails the whole load so a partial
// snapshot never reaches aggregation.
func (l *MetricsLoader) Load(ctx context.Context) (metrics.SourceSet, error) {
	var src metrics.SourceSet

	social, err := l.fetchTab(l.Cfg.SocialTab, socialFields)
	if err != nil {
		return src, err
	}
	for _, row := range social {
		socialRow := metrics.SocialRow{}
		if socialRow.ClubID, err = row.getInt64("club_id"); err != nil {
			return src, err
		}
		if socialRow.Posts, err = row.getInt("posts"); err != nil {
			return src, err
		}
		if socialRow.Likes, err = row.getInt("likes"); err != nil {
			return src, err
		}
		if socialRow.Reach, err = row.getInt("reach"); err != nil {
			return src, err
		}
		src.Social = append(src.Social, socialRow)
	}

	messaging, err := l.fetchTab(l.Cfg.MessagingTab, messagingFields)
	if err != nil {
		return src, err
	}
	for _, row := range messaging {
		messagingRow := metrics.MessagingRow{}
		if messagingRow.ClubID, err = row.getInt64("club_id"); err != nil {
			return src, err
		}
		if messagingRow.Messages, err = row.getInt("messages"); err != nil {
			return src, err
		}
		if messagingRow.Sentiment, err = row.getFloat("sentiment"); err != nil {
			return src, err
		}
		src.Messaging = append(src.Messaging, messagingRow)
	}

	attendance, err := l.fetchTab(l.Cfg.AttendanceTab, attendanceFields)
	if err != nil {
		return src, err
	}
	for _, row := range attendance {
		attendanceRow := metrics.AttendanceRow{}
		if attendanceRow.ClubID, err = row.getInt64("club_id"); err != nil {
			return src, err
		}
		if attendanceRow.Attendees, err = row.getInt("attendees"); err != nil {
			return src, err
		}
		src.Attendance = append(src.Attendance, attendanceRow)
	}

	awardWins, err := l.fetchTab(l.Cfg.AwardWinsTab, awardWinFields)
	if err != nil {
		return src, err
	}
	for _, row := range awardWins {
		awardWinRow := metrics.AwardWinRow{
			Name:  row.fields["award_name"],
			Level: row.fields["level"],
		}
		if awardWinRow.ClubID, err = row.getInt64("club_id"); err != nil {
			return src, err
		}
		src.AwardWins = append(src.AwardWins, awardWinRow)
	}

	reports, err := sources.ReadReports(l.Cfg.ReportsDir, l.ClubIDs, l.Logger)
	if err != nil {
		return src, err
	}
	src.Reports = reports

	return src, nil
}

// sheetRow is one data row of a tab with header-based field access
type sheetRow struct {
	tab    string
	line   int
	fields map[string]string
}

func (r sheetRow) get(column string) (string, error) {
	value, ok := r.fields[column]
	if !ok {
		return "", fmt.Errorf("tab %s row %d: missing column %q", r.tab, r.line, column)
	}
	return value, nil
}

func (r sheetRow) getInt(column string) (int, error) {
	raw, err := r.get(column)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("tab %s row %d: column %q is not an integer: %q", r.tab, r.line, column, raw)
	}
	return value, nil
}

func (r sheetRow) getInt64(column string) (int64, error) {
	raw, err := r.get(column)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("tab %s row %d: column %q is not an integer: %q", r.tab, r.line, column, raw)
	}
	return value, nil
}

func (r sheetRow) getFloat(column string) (float64, error) {
	raw, err := r.get(column)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("tab %s row %d: column %q is not a number: %q", r.tab, r.line, column, raw)
	}
	return value, nil
}

// fetchTab reads a tab and indexes every data row by the header. Required
// columns must be present in the header; cell values are validated by the
// callers' typed getters.
func (l *MetricsLoader) fetchTab(tab string, requiredFields []string) ([]sheetRow, error) {
	values, err := l.Client.GetValues(l.Cfg.MetricsSheetID, tab)
	if err != nil {
		return nil, fmt.Errorf("failed to read tab %s: %w", tab, err)
	}
	if len(values) == 0 {
		l.Logger.Warn("Metrics tab is empty", zap.String("tab", tab))
		return nil, nil
	}

	header := make(map[int]string, len(values[0]))
	for i, cell := range values[0] {
		if cellStr, ok := cell.(string); ok {
			header[i] = cellStr
		}
	}

	for _, field := range requiredFields {
		found := false
		for _, column := range header {
			if column == field {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("tab %s is missing required column %q", tab, field)
		}
	}

	rows := make([]sheetRow, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		fields := make(map[string]string, len(header))
		for index, column := range header {
			if index < len(values[i]) {
				fields[column] = cellString(values[i][index])
			}
		}
		rows = append(rows, sheetRow{tab: tab, line: i + 1, fields: fields})
	}

	return rows, nil
}

// cellString renders a cell value; the API returns numbers as float64 when
// a cell is not formatted as text
func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
