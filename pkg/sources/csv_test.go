package sources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadSocial_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, SocialFile, `club_id,club_name,year,month,posts,likes,reach
1,Coding Club,2025,1,5,100,1000
1,Coding Club,2025,2,3,50,500
2,Dance Club,2025,1,2,40,300
`)

	rows, err := ReadSocial(path, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, int64(1), rows[0].ClubID)
	assert.Equal(t, 5, rows[0].Posts)
	assert.Equal(t, 100, rows[0].Likes)
	assert.Equal(t, 1000, rows[0].Reach)
	assert.Equal(t, int64(2), rows[2].ClubID)
}

func TestReadSocial_MissingFileIsEmpty(t *testing.T) {
	rows, err := ReadSocial(filepath.Join(t.TempDir(), SocialFile), zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadSocial_MalformedValueFailsLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, SocialFile, `club_id,club_name,year,month,posts,likes,reach
1,Coding Club,2025,1,five,100,1000
`)

	_, err := ReadSocial(path, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "posts")
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadSocial_MissingColumnFailsLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, SocialFile, `club_id,club_name,posts,likes
1,Coding Club,5,100
`)

	_, err := ReadSocial(path, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reach")
}

func TestReadMessaging_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, MessagingFile, `club_id,club_name,year,month,messages,sentiment,active_members
1,Coding Club,2025,1,350,0.42,30
`)

	rows, err := ReadMessaging(path, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, int64(1), rows[0].ClubID)
	assert.Equal(t, 350, rows[0].Messages)
	assert.InDelta(t, 0.42, rows[0].Sentiment, 1e-9)
}

func TestReadMessaging_NegativeSentiment(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, MessagingFile, `club_id,messages,sentiment
1,10,-0.75
`)

	rows, err := ReadMessaging(path, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, -0.75, rows[0].Sentiment, 1e-9)
}

func TestReadAttendance_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, AttendanceFile, `club_id,club_name,year,month,event_name,attendees
1,Coding Club,2025,1,Hack Night,45
1,Coding Club,2025,1,Demo Day,60
`)

	rows, err := ReadAttendance(path, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 45, rows[0].Attendees)
	assert.Equal(t, 60, rows[1].Attendees)
}

func TestReadAwardWins_EachRowIsOneWin(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, AwardWinsFile, `club_id,club_name,year,month,award_name,level
1,Coding Club,2025,1,Hackathon Winner,City
1,Coding Club,2025,3,Innovation Prize,State
`)

	rows, err := ReadAwardWins(path, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Hackathon Winner", rows[0].Name)
	assert.Equal(t, "State", rows[1].Level)
}

func TestReadAwardWins_NameAndLevelOptional(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, AwardWinsFile, `club_id
7
`)

	rows, err := ReadAwardWins(path, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(7), rows[0].ClubID)
	assert.Empty(t, rows[0].Name)
}

func TestReadReports_MissingDirIsEmpty(t *testing.T) {
	reports, err := ReadReports(filepath.Join(t.TempDir(), "absent"), []int64{1, 2}, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestReadReports_PerClubDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ReportFileName(1), "successful year")
	writeFile(t, dir, ReportFileName(3), "quiet year")

	reports, err := ReadReports(dir, []int64{1, 2, 3}, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, reports, 2)
	assert.Equal(t, []string{"successful year"}, reports[1])
	assert.NotContains(t, reports, int64(2))
	assert.Equal(t, []string{"quiet year"}, reports[3])
}

func TestCSVLoader_LoadAllSources(t *testing.T) {
	dataDir := t.TempDir()
	reportsDir := filepath.Join(dataDir, "reports")
	require.NoError(t, os.MkdirAll(reportsDir, 0755))

	writeFile(t, dataDir, SocialFile, "club_id,posts,likes,reach\n1,5,100,1000\n")
	writeFile(t, dataDir, MessagingFile, "club_id,messages,sentiment\n1,350,0.42\n")
	writeFile(t, dataDir, AttendanceFile, "club_id,attendees\n1,45\n")
	writeFile(t, dataDir, AwardWinsFile, "club_id,award_name,level\n1,Hackathon Winner,City\n")
	writeFile(t, reportsDir, ReportFileName(1), "excellent impact")

	loader := &CSVLoader{
		DataDir:    dataDir,
		ReportsDir: reportsDir,
		ClubIDs:    []int64{1},
		Logger:     zap.NewNop(),
	}

	src, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, src.Social, 1)
	assert.Len(t, src.Messaging, 1)
	assert.Len(t, src.Attendance, 1)
	assert.Len(t, src.AwardWins, 1)
	assert.Len(t, src.Reports, 1)
}

func TestCSVLoader_MalformedSourceAbortsLoad(t *testing.T) {
	dataDir := t.TempDir()
	writeFile(t, dataDir, SocialFile, "club_id,posts,likes,reach\nbad,5,100,1000\n")

	loader := &CSVLoader{
		DataDir:    dataDir,
		ReportsDir: filepath.Join(dataDir, "reports"),
		Logger:     zap.NewNop(),
	}

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "club_id")
}
