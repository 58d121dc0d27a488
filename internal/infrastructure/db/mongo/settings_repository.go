package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aurelia-jewelry/checkout-rates/internal/core/domain"
)

const collectionSettings = "shipping_settings"

// settingsDocID keys the single merchant-wide settings document. The store
// holds one configuration snapshot per deployment.
const settingsDocID = "merchant"

// SettingsRepository persists the merchant shipping configuration as a
// single document in the shipping_settings collection.
type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(collectionSettings)}
}

// Load fetches the current settings snapshot.
func (r *SettingsRepository) Load(ctx context.Context) (*domain.ShippingSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var settings domain.ShippingSettings
	err := r.col.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// Save replaces the settings document, creating it on first write.
func (r *SettingsRepository) Save(ctx context.Context, settings *domain.ShippingSettings) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	settings.ID = settingsDocID
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, settings, options.Replace().SetUpsert(true))
	return err
}
