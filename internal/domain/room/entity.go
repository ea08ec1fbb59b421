package room

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("room title is required")
	ErrNonPositiveRent = errors.New("room rent must be positive")
	ErrNoFacilities    = errors.New("room must list at least one facility")
)

// Room is a bookable resource with listing metadata. Pictures are opaque
// file identifiers in upload order; this service never touches the files.
type Room struct {
	id         uuid.UUID
	title      string
	rent       int64
	facilities []string
	pictures   []string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRoom(title string, rent int64, facilities []string, pictures []string) (*Room, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if rent <= 0 {
		return nil, ErrNonPositiveRent
	}
	if len(facilities) == 0 {
		return nil, ErrNoFacilities
	}

	return &Room{
		id:         uuid.New(),
		title:      title,
		rent:       rent,
		facilities: facilities,
		pictures:   pictures,
	}, nil
}

func ReconstructRoom(id uuid.UUID, title string, rent int64, facilities, pictures []string, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:         id,
		title:      title,
		rent:       rent,
		facilities: facilities,
		pictures:   pictures,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Update replaces listing fields, keeping the stored value for any zero-value
// argument, and appends newly uploaded picture identifiers.
func (r *Room) Update(title string, rent int64, facilities []string, pictures []string) error {
	if title != "" {
		r.title = title
	}
	if rent != 0 {
		if rent < 0 {
			return ErrNonPositiveRent
		}
		r.rent = rent
	}
	if len(facilities) > 0 {
		r.facilities = facilities
	}
	if len(pictures) > 0 {
		r.pictures = append(r.pictures, pictures...)
	}
	return nil
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Title() string        { return r.title }
func (r *Room) Rent() int64          { return r.rent }
func (r *Room) Facilities() []string { return r.facilities }
func (r *Room) Pictures() []string   { return r.pictures }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
