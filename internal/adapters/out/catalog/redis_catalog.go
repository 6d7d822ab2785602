// Package catalog reads product data from the catalog cache in Redis.
// The catalog service owns the product master data and mirrors the fields
// an order needs (name, SKU, unit price) into Redis keyed by product id.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "catalog:product:"

// productRecord mirrors the JSON the catalog service writes to Redis.
type productRecord struct {
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	UnitPrice int64  `json:"unit_price"`
}

// RedisCatalogReader implements CatalogReader against the Redis product
// mirror. A missing key surfaces as ObjectNotFoundError so the caller can
// reject the unknown product.
type RedisCatalogReader struct {
	client *redis.Client
}

// NewRedisCatalogReader creates a catalog reader over the given client.
func NewRedisCatalogReader(client *redis.Client) *RedisCatalogReader {
	return &RedisCatalogReader{client: client}
}

// GetProduct resolves one product by id.
func (r *RedisCatalogReader) GetProduct(ctx context.Context, productID kernel.UUID) (ports.CatalogProduct, error) {
	if err := productID.Validate(); err != nil {
		return ports.CatalogProduct{}, err
	}

	raw, err := r.client.Get(ctx, keyPrefix+productID.String()).Result()
	if errors.Is(err, redis.Nil) {
		return ports.CatalogProduct{}, errs.NewObjectNotFoundError("productID", productID.String())
	}
	if err != nil {
		return ports.CatalogProduct{}, fmt.Errorf("catalog lookup for product %s: %w", productID.String(), err)
	}

	var record productRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return ports.CatalogProduct{}, errs.NewValueIsInvalidErrorWithCause("catalog product record", err)
	}

	unitPrice, err := kernel.NewMoney(record.UnitPrice)
	if err != nil {
		return ports.CatalogProduct{}, errs.NewValueIsInvalidErrorWithCause("catalog unit price", err)
	}

	return ports.CatalogProduct{
		ID:        productID,
		Name:      record.Name,
		SKU:       record.SKU,
		UnitPrice: unitPrice,
	}, nil
}
