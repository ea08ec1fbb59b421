//go:build unit

package room_test

import (
	"testing"

	"room-booking-api/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoom(t *testing.T) *room.Room {
	t.Helper()
	r, err := room.NewRoom("Deluxe Suite", 1200, []string{"wifi", "ac"}, []string{"pic1.jpg"})
	require.NoError(t, err)
	return r
}

func TestNewRoom(t *testing.T) {
	t.Run("valid room", func(t *testing.T) {
		r := newRoom(t)
		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, "Deluxe Suite", r.Title())
		assert.Equal(t, int64(1200), r.Rent())
	})

	tests := []struct {
		name       string
		title      string
		rent       int64
		facilities []string
		errIs      error
	}{
		{name: "empty title", title: "", rent: 100, facilities: []string{"wifi"}, errIs: room.ErrEmptyTitle},
		{name: "zero rent", title: "Room", rent: 0, facilities: []string{"wifi"}, errIs: room.ErrNonPositiveRent},
		{name: "negative rent", title: "Room", rent: -5, facilities: []string{"wifi"}, errIs: room.ErrNonPositiveRent},
		{name: "no facilities", title: "Room", rent: 100, facilities: nil, errIs: room.ErrNoFacilities},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := room.NewRoom(tt.title, tt.rent, tt.facilities, nil)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestRoomUpdate(t *testing.T) {
	t.Run("zero values keep stored fields", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.Update("", 0, nil, nil))

		assert.Equal(t, "Deluxe Suite", r.Title())
		assert.Equal(t, int64(1200), r.Rent())
		assert.Equal(t, []string{"wifi", "ac"}, r.Facilities())
	})

	t.Run("replaces supplied fields", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.Update("Budget Room", 800, []string{"fan"}, nil))

		assert.Equal(t, "Budget Room", r.Title())
		assert.Equal(t, int64(800), r.Rent())
		assert.Equal(t, []string{"fan"}, r.Facilities())
	})

	t.Run("pictures append instead of replace", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.Update("", 0, nil, []string{"pic2.jpg"}))

		assert.Equal(t, []string{"pic1.jpg", "pic2.jpg"}, r.Pictures())
	})

	t.Run("negative rent rejected", func(t *testing.T) {
		r := newRoom(t)
		assert.ErrorIs(t, r.Update("", -100, nil, nil), room.ErrNonPositiveRent)
		assert.Equal(t, int64(1200), r.Rent())
	})
}
