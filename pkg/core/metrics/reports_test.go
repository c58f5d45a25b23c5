package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreReport_Empty(t *testing.T) {
	assert.Equal(t, 0.0, ScoreReport(""))
}

func TestScoreReport_PositiveKeywords(t *testing.T) {
	text := "A successful semester: we won praise for our mentorship program."
	// successful, won, praise, mentorship
	assert.InDelta(t, 0.4, ScoreReport(text), 1e-9)
}

func TestScoreReport_NegativesSubtractHalf(t *testing.T) {
	text := "successful collaboration despite event postponements and schedule conflicts"
	// (2 - 0.5*2) / 10
	assert.InDelta(t, 0.1, ScoreReport(text), 1e-9)
}

func TestScoreReport_ClampedAtZero(t *testing.T) {
	text := "postponements, conflicts, lower turnout, challenges, cancelled, delay"
	assert.Equal(t, 0.0, ScoreReport(text))
}

func TestScoreReport_ClampedAtOne(t *testing.T) {
	text := strings.Repeat("excellent impact. ", 20)
	assert.Equal(t, 1.0, ScoreReport(text))
}

func TestScoreReport_CaseInsensitive(t *testing.T) {
	assert.Equal(t, ScoreReport("EXCELLENT Impact"), ScoreReport("excellent impact"))
}

func TestScoreReport_CountsRepeats(t *testing.T) {
	// Each occurrence counts, not each distinct keyword
	assert.InDelta(t, 0.3, ScoreReport("won won won"), 1e-9)
}
