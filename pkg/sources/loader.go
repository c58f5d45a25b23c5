package sources

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/campuslife/club-awards/pkg/core/metrics"
)

// CSVLoader loads the four metric snapshots and the report documents from
// a local data directory.
type CSVLoader struct {
	DataDir    string
	ReportsDir string
	ClubIDs    []int64
	Logger     *zap.Logger
}

// Load reads all sources. Missing files become empty record sets; any
// malformed row aborts the load so partial data never reaches aggregation.
func (l *CSVLoader) Load(ctx context.Context) (metrics.SourceSet, error) {
	var src metrics.SourceSet
	var err error

	if src.Social, err = ReadSocial(filepath.Join(l.DataDir, SocialFile), l.Logger); err != nil {
		return metrics.SourceSet{}, err
	}
	if src.Messaging, err = ReadMessaging(filepath.Join(l.DataDir, MessagingFile), l.Logger); err != nil {
		return metrics.SourceSet{}, err
	}
	if src.Attendance, err = ReadAttendance(filepath.Join(l.DataDir, AttendanceFile), l.Logger); err != nil {
		return metrics.SourceSet{}, err
	}
	if src.AwardWins, err = ReadAwardWins(filepath.Join(l.DataDir, AwardWinsFile), l.Logger); err != nil {
		return metrics.SourceSet{}, err
	}
	if src.Reports, err = ReadReports(l.ReportsDir, l.ClubIDs, l.Logger); err != nil {
		return metrics.SourceSet{}, err
	}

	return src, nil
}
