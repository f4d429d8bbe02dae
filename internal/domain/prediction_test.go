package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatusUpcoming, StatusFor(6))
	assert.Equal(t, StatusDueToday, StatusFor(0))
	assert.Equal(t, StatusOverdue, StatusFor(-2))
}

func TestPrediction_DaysUntilText(t *testing.T) {
	t.Parallel()

	days := func(n int) *Prediction { return &Prediction{DaysUntil: &n} }

	assert.Equal(t, "3 days away", days(3).DaysUntilText())
	assert.Equal(t, "Today!", days(0).DaysUntilText())
	assert.Equal(t, "2 days overdue", days(-2).DaysUntilText())
	assert.Equal(t, "", (&Prediction{}).DaysUntilText())

	var nilPrediction *Prediction
	assert.Equal(t, "", nilPrediction.DaysUntilText())
	assert.True(t, nilPrediction.IsEmpty())
}

func TestFertileWindow_Contains(t *testing.T) {
	t.Parallel()

	w := FertileWindow{
		Start:     time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC),
		Ovulation: time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC),
	}

	assert.False(t, w.Contains(time.Date(2025, 1, 12, 23, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(time.Date(2025, 1, 18, 22, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC)))
}

func TestPhase_Label(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Menstrual Phase", PhaseMenstrual.Label())
	assert.Equal(t, "Follicular Phase", PhaseFollicular.Label())
	assert.Equal(t, "Ovulatory Phase", PhaseOvulatory.Label())
	assert.Equal(t, "Luteal Phase", PhaseLuteal.Label())
	assert.Equal(t, "", PhaseNone.Label())
	assert.Equal(t, "", Phase("spring").Label())
}
