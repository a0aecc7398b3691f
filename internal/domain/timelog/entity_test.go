//go:build unit

package timelog_test

import (
	"testing"
	"time"

	"autocare-api/internal/domain/timelog"
	"autocare-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartTimeLog(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	log := timelog.StartTimeLog(uuid.New(), uuid.New(), now, "  engine diagnostics  ")

	assert.NotEqual(t, uuid.Nil, log.ID())
	assert.True(t, log.IsActive())
	assert.Nil(t, log.EndedAt())
	assert.Equal(t, "engine diagnostics", log.Description())
	assert.Equal(t, time.Duration(0), log.Duration())
}

func TestStop(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("closes the running log", func(t *testing.T) {
		log := timelog.StartTimeLog(uuid.New(), uuid.New(), now, "")
		require.NoError(t, log.Stop(now.Add(90*time.Minute)))

		assert.False(t, log.IsActive())
		require.NotNil(t, log.EndedAt())
		assert.Equal(t, 90*time.Minute, log.Duration())
	})

	t.Run("stopping twice fails", func(t *testing.T) {
		log := timelog.StartTimeLog(uuid.New(), uuid.New(), now, "")
		require.NoError(t, log.Stop(now.Add(time.Minute)))
		require.ErrorIs(t, log.Stop(now.Add(2*time.Minute)), timelog.ErrAlreadyCompleted)
	})

	t.Run("clock skew clamps to zero duration", func(t *testing.T) {
		log := timelog.StartTimeLog(uuid.New(), uuid.New(), now, "")
		require.NoError(t, log.Stop(now.Add(-time.Hour)))
		assert.Equal(t, time.Duration(0), log.Duration())
	})
}

func TestNewManualTimeLog(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	start := now.Add(-3 * time.Hour)

	t.Run("completed on creation", func(t *testing.T) {
		log, err := timelog.NewManualTimeLog(uuid.New(), uuid.New(), start, start.Add(time.Hour), "tire rotation", now)
		require.NoError(t, err)
		assert.False(t, log.IsActive())
		assert.Equal(t, time.Hour, log.Duration())
	})

	t.Run("end before start rejected", func(t *testing.T) {
		_, err := timelog.NewManualTimeLog(uuid.New(), uuid.New(), start, start.Add(-time.Minute), "", now)
		require.ErrorIs(t, err, timelog.ErrInvalidRange)
	})

	t.Run("zero-length range rejected", func(t *testing.T) {
		_, err := timelog.NewManualTimeLog(uuid.New(), uuid.New(), start, start, "", now)
		require.ErrorIs(t, err, timelog.ErrInvalidRange)
	})
}

func TestAmend(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("rewrites a completed log", func(t *testing.T) {
		log := builder.NewTimeLogBuilder().AsCompleted(time.Hour).BuildDomain()
		newStart := now.Add(-2 * time.Hour)
		require.NoError(t, log.Amend(newStart, newStart.Add(30*time.Minute), "corrected entry", now))

		assert.Equal(t, newStart, log.StartedAt())
		assert.Equal(t, 30*time.Minute, log.Duration())
		assert.Equal(t, "corrected entry", log.Description())
	})

	t.Run("active log must be stopped first", func(t *testing.T) {
		log := builder.NewTimeLogBuilder().BuildDomain()
		err := log.Amend(now, now.Add(time.Hour), "", now)
		require.ErrorIs(t, err, timelog.ErrStillActive)
	})

	t.Run("invalid range rejected", func(t *testing.T) {
		log := builder.NewTimeLogBuilder().AsCompleted(time.Hour).BuildDomain()
		err := log.Amend(now, now.Add(-time.Hour), "", now)
		require.ErrorIs(t, err, timelog.ErrInvalidRange)
	})
}
