package favorites

import (
	"context"
	"errors"

	"holidaze/internal/domain/booking"
)

var ErrVenueRequired = errors.New("favorites: venue id required")

// List is one user's saved venues in the order they were added.
type List struct {
	Owner    string
	VenueIDs []booking.VenueID
}

func NewList(owner string) *List {
	return &List{Owner: owner}
}

func (l *List) Has(id booking.VenueID) bool {
	for _, v := range l.VenueIDs {
		if v == id {
			return true
		}
	}
	return false
}

func (l *List) Add(id booking.VenueID) error {
	if id == "" {
		return ErrVenueRequired
	}
	if !l.Has(id) {
		l.VenueIDs = append(l.VenueIDs, id)
	}
	return nil
}

func (l *List) Remove(id booking.VenueID) {
	out := l.VenueIDs[:0]
	for _, v := range l.VenueIDs {
		if v != id {
			out = append(out, v)
		}
	}
	l.VenueIDs = out
}

// Toggle flips membership and reports whether the venue is now a favorite.
func (l *List) Toggle(id booking.VenueID) (bool, error) {
	if id == "" {
		return false, ErrVenueRequired
	}
	if l.Has(id) {
		l.Remove(id)
		return false, nil
	}
	l.VenueIDs = append(l.VenueIDs, id)
	return true, nil
}

type Repository interface {
	// Get returns an empty list, not an error, for an owner with no favorites.
	Get(ctx context.Context, owner string) (*List, error)
	Save(ctx context.Context, list *List) error
}
