package mongo

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"holidaze/internal/domain/booking"
	domainfavorites "holidaze/internal/domain/favorites"
)

type FavoritesRepository struct {
	col *mongo.Collection
}

func NewFavoritesRepository(db *mongo.Database) *FavoritesRepository {
	return &FavoritesRepository{col: db.Collection("favorites")}
}

type favoritesDocument struct {
	Owner     string    `bson:"_id"`
	VenueIDs  []string  `bson:"venue_ids"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (r *FavoritesRepository) Get(ctx context.Context, owner string) (*domainfavorites.List, error) {
	list := domainfavorites.NewList(owner)
	var doc favoritesDocument
	err := r.col.FindOne(ctx, bson.M{"_id": owner}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return list, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "mongo: favorites get %s", owner)
	}
	for _, id := range doc.VenueIDs {
		list.VenueIDs = append(list.VenueIDs, booking.VenueID(id))
	}
	return list, nil
}

func (r *FavoritesRepository) Save(ctx context.Context, list *domainfavorites.List) error {
	doc := favoritesDocument{Owner: list.Owner, VenueIDs: make([]string, 0, len(list.VenueIDs)), UpdatedAt: time.Now().UTC()}
	for _, id := range list.VenueIDs {
		doc.VenueIDs = append(doc.VenueIDs, string(id))
	}
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": list.Owner}, doc, options.Replace().SetUpsert(true))
	return errors.Wrapf(err, "mongo: favorites save %s", list.Owner)
}

var _ domainfavorites.Repository = (*FavoritesRepository)(nil)
