package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/models"
)

type stubCourier struct {
	delivered chan models.ContactMessage
	fail      bool
}

func (v *stubCourier) Deliver(item models.ContactMessage) error {
	v.delivered <- item
	if v.fail {
		return errors.New("smtp unreachable")
	}
	return nil
}

func TestContactMessageDispatch(t *testing.T) {
	resetTables(t)
	stub := &stubCourier{delivered: make(chan models.ContactMessage, 1)}
	SetCourier(stub)
	defer SetCourier(nil)

	item, err := NewContactMessage(42, models.ContactMessage{
		Name:    "Reader",
		Email:   "reader@example.com",
		Subject: "Correction",
		Body:    "The second paragraph has the wrong date.",
	})
	require.NoError(t, err)
	require.NotZero(t, item.ID)

	select {
	case got := <-stub.delivered:
		assert.Equal(t, item.ID, got.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("courier was never invoked")
	}

	assert.Eventually(t, func() bool {
		var row models.ContactMessage
		if err := database.C.First(&row, item.ID).Error; err != nil {
			return false
		}
		return row.Delivered
	}, 2*time.Second, 10*time.Millisecond)
}

func TestContactMessageSurvivesCourierFailure(t *testing.T) {
	resetTables(t)
	stub := &stubCourier{delivered: make(chan models.ContactMessage, 1), fail: true}
	SetCourier(stub)
	defer SetCourier(nil)

	item, err := NewContactMessage(42, models.ContactMessage{
		Name:    "Reader",
		Email:   "reader@example.com",
		Subject: "Tip",
		Body:    "Something is happening downtown.",
	})
	require.NoError(t, err)

	<-stub.delivered

	// The submission stays on record, just not marked delivered.
	var row models.ContactMessage
	require.NoError(t, database.C.First(&row, item.ID).Error)
	assert.False(t, row.Delivered)
}
