//go:build unit

package modreq_test

import (
	"testing"
	"time"

	"autocare-api/internal/domain/modreq"
	"autocare-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModificationRequest(t *testing.T) {
	t.Run("opens pending", func(t *testing.T) {
		req, err := builder.NewModificationRequestBuilder().BuildDomain()
		require.NoError(t, err)
		assert.True(t, req.IsPending())
		assert.Nil(t, req.DecidedBy())
		assert.Nil(t, req.DecidedAt())
	})

	t.Run("reason is trimmed", func(t *testing.T) {
		req, err := builder.NewModificationRequestBuilder().WithReason("  new tires too  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "new tires too", req.Reason())
	})

	t.Run("empty reason rejected", func(t *testing.T) {
		_, err := builder.NewModificationRequestBuilder().WithReason("   ").BuildDomain()
		require.ErrorIs(t, err, modreq.ErrEmptyReason)
	})
}

func TestDecide(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	admin := uuid.New()

	t.Run("approve records the decision", func(t *testing.T) {
		req, err := builder.NewModificationRequestBuilder().BuildDomain()
		require.NoError(t, err)

		reason := "slot available"
		require.NoError(t, req.Approve(admin, &reason, now))

		assert.Equal(t, modreq.StatusApproved, req.Status())
		require.NotNil(t, req.DecidedBy())
		assert.Equal(t, admin, *req.DecidedBy())
		require.NotNil(t, req.DecidedAt())
		assert.Equal(t, now, *req.DecidedAt())
	})

	t.Run("reject records the decision", func(t *testing.T) {
		req, err := builder.NewModificationRequestBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, req.Reject(admin, nil, now))
		assert.Equal(t, modreq.StatusRejected, req.Status())
		assert.Nil(t, req.DecisionReason())
	})

	t.Run("deciding twice fails", func(t *testing.T) {
		req, err := builder.NewModificationRequestBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, req.Approve(admin, nil, now))
		require.ErrorIs(t, req.Reject(admin, nil, now), modreq.ErrAlreadyDecided)
		assert.Equal(t, modreq.StatusApproved, req.Status())
	})

	t.Run("reconstructed decided request stays decided", func(t *testing.T) {
		req := builder.NewModificationRequestBuilder().WithStatus("rejected").BuildReconstructed()
		require.ErrorIs(t, req.Approve(admin, nil, now), modreq.ErrAlreadyDecided)
	})
}
