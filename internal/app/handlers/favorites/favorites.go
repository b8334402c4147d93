package favorites

import (
	"context"

	"holidaze/internal/app/commands"
	"holidaze/internal/app/dto"
	"holidaze/internal/app/middleware"
	"holidaze/internal/app/queries"
	"holidaze/internal/domain/auth"
	"holidaze/internal/domain/booking"
	domainfavorites "holidaze/internal/domain/favorites"
)

// owner resolves whose favorites to use. Favorites belong to a signed-in
// user; there is no shared visitor list.
func owner(ctx context.Context) (string, error) {
	session, _ := auth.SessionFromContext(ctx)
	if o := session.FavoritesOwner(); o != "" {
		return o, nil
	}
	return "", middleware.ErrUnauthenticated
}

type ListQuery struct{}

func (ListQuery) Key() string           { return "favorites.list" }
func (ListQuery) RequiresSession() bool { return true }

type ListHandler struct {
	Repo domainfavorites.Repository
}

func (h *ListHandler) Handle(ctx context.Context, _ ListQuery) (dto.Favorites, error) {
	who, err := owner(ctx)
	if err != nil {
		return dto.Favorites{}, err
	}
	list, err := h.Repo.Get(ctx, who)
	if err != nil {
		return dto.Favorites{}, err
	}
	return dto.MapFavorites(list), nil
}

type ToggleCommand struct {
	VenueID string
}

func (ToggleCommand) Key() string           { return "favorites.toggle" }
func (ToggleCommand) RequiresSession() bool { return true }

type ToggleResult struct {
	VenueID   string        `json:"venue_id"`
	Favorite  bool          `json:"favorite"`
	Favorites dto.Favorites `json:"favorites"`
}

type ToggleHandler struct {
	Repo domainfavorites.Repository
}

func (h *ToggleHandler) Handle(ctx context.Context, cmd ToggleCommand) (*ToggleResult, error) {
	who, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	list, err := h.Repo.Get(ctx, who)
	if err != nil {
		return nil, err
	}
	favorite, err := list.Toggle(booking.VenueID(cmd.VenueID))
	if err != nil {
		return nil, err
	}
	if err := h.Repo.Save(ctx, list); err != nil {
		return nil, err
	}
	return &ToggleResult{VenueID: cmd.VenueID, Favorite: favorite, Favorites: dto.MapFavorites(list)}, nil
}

var (
	_ queries.Handler[ListQuery, dto.Favorites]      = (*ListHandler)(nil)
	_ commands.Handler[ToggleCommand, *ToggleResult] = (*ToggleHandler)(nil)
)
