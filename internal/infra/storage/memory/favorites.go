package memory

import (
	"context"
	"sync"

	"holidaze/internal/domain/booking"
	domainfavorites "holidaze/internal/domain/favorites"
)

type FavoritesRepository struct {
	mu    sync.RWMutex
	items map[string][]booking.VenueID
}

func NewFavoritesRepository() *FavoritesRepository {
	return &FavoritesRepository{items: make(map[string][]booking.VenueID)}
}

func (r *FavoritesRepository) Get(ctx context.Context, owner string) (*domainfavorites.List, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := domainfavorites.NewList(owner)
	list.VenueIDs = append([]booking.VenueID(nil), r.items[owner]...)
	return list, nil
}

func (r *FavoritesRepository) Save(ctx context.Context, list *domainfavorites.List) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[list.Owner] = append([]booking.VenueID(nil), list.VenueIDs...)
	return nil
}

var _ domainfavorites.Repository = (*FavoritesRepository)(nil)
