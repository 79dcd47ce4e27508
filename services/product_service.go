package services

import (
	"context"
	"fmt"
	"time"

	"bcspace_server/database"
	"bcspace_server/lib"
	"bcspace_server/structs"
	"bcspace_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// GetActiveProducts returns the storefront catalog: active products in
// display order. Served from cache when possible; a cache failure falls
// through to the database.
func (ps *ProductService) GetActiveProducts(ctx context.Context) ([]tables.Product, error) {
	if cached, err := ps.cacheService.GetActiveProductsList(); err == nil && cached != nil {
		return cached, nil
	}

	products, err := database.Query[tables.Product](ps.db).
		Where("is_active", true).
		OrderBy("sort_order", database.ASC).
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if err := ps.cacheService.SetActiveProductsList(products); err != nil {
		ps.logger.Warn("Failed to cache active products", gecho.Field("error", err))
	}

	return products, nil
}

// GetProductBySlug returns one product, active or not. Returns nil when
// the slug is unknown.
func (ps *ProductService) GetProductBySlug(ctx context.Context, slug string) (*tables.Product, error) {
	if cached, err := ps.cacheService.GetProductBySlug(slug); err == nil && cached != nil {
		return cached, nil
	}

	product, err := database.Query[tables.Product](ps.db).
		Where("slug", slug).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, nil
	}

	if err := ps.cacheService.SetProductBySlug(product); err != nil {
		ps.logger.Warn("Failed to cache product", gecho.Field("error", err), gecho.Field("slug", slug))
	}

	return product, nil
}

// GetProductsBySlugs fetches a batch of products by slug.
func (ps *ProductService) GetProductsBySlugs(ctx context.Context, slugs []string) ([]tables.Product, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	slugsIface := make([]any, len(slugs))
	for i, slug := range slugs {
		slugsIface[i] = slug
	}

	products, err := database.Query[tables.Product](ps.db).
		WhereIn("slug", slugsIface).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return products, nil
}

// validateProduct checks the invariants every stored product must hold.
func (ps *ProductService) validateProduct(product *tables.Product) error {
	if product.Slug == "" {
		return fmt.Errorf("product slug is required")
	}
	if product.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if product.Price < 0 {
		return fmt.Errorf("product price must not be negative")
	}
	if product.SalePrice != nil && *product.SalePrice < 0 {
		return fmt.Errorf("product sale price must not be negative")
	}
	if err := structs.ValidateSchema(product.ConfigSchema); err != nil {
		return fmt.Errorf("invalid config schema: %w", err)
	}
	if err := product.PricingRule.Validate(); err != nil {
		return fmt.Errorf("invalid pricing rule: %w", err)
	}
	return nil
}

// CreateProduct inserts a new product after validating its schema and
// pricing rule.
func (ps *ProductService) CreateProduct(ctx context.Context, product *tables.Product) (*tables.Product, error) {
	if err := ps.validateProduct(product); err != nil {
		return nil, err
	}

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	created, err := database.Query[tables.Product](ps.db).Insert(ctx, product)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if err := ps.cacheService.InvalidateProductCaches(product.Slug); err != nil {
		ps.logger.Warn("Failed to invalidate product caches", gecho.Field("error", err))
	}

	ps.logger.Info("Product created",
		gecho.Field("product_id", created.ID),
		gecho.Field("slug", created.Slug))

	return created, nil
}

// UpdateProduct replaces a product's editable fields.
func (ps *ProductService) UpdateProduct(ctx context.Context, slug string, product *tables.Product) (*tables.Product, error) {
	existing, err := ps.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, lib.ErrNotFound
	}

	product.ID = existing.ID
	product.Slug = slug
	product.CreatedAt = existing.CreatedAt
	if err := ps.validateProduct(product); err != nil {
		return nil, err
	}

	updated, err := database.Query[tables.Product](ps.db).
		Where("id", existing.ID).
		UpdateReturning(ctx, map[string]any{
			"name":                 product.Name,
			"price":                product.Price,
			"sale_price":           product.SalePrice,
			"description":          product.Description,
			"detailed_description": product.DetailedDescription,
			"price_description":    product.PriceDescription,
			"image_url":            product.ImageURL,
			"config_schema":        product.ConfigSchema,
			"pricing_rule":         product.PricingRule,
			"is_active":            product.IsActive,
			"sort_order":           product.SortOrder,
			"updated_at":           time.Now(),
		})
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if len(updated) == 0 {
		return nil, lib.ErrNotFound
	}

	if err := ps.cacheService.InvalidateProductCaches(slug); err != nil {
		ps.logger.Warn("Failed to invalidate product caches", gecho.Field("error", err))
	}

	return &updated[0], nil
}

// SetProductActive toggles storefront visibility without touching the rest
// of the product.
func (ps *ProductService) SetProductActive(ctx context.Context, slug string, active bool) error {
	count, err := database.Query[tables.Product](ps.db).
		Where("slug", slug).
		Update(ctx, map[string]any{
			"is_active":  active,
			"updated_at": time.Now(),
		})
	if err != nil {
		return lib.MapPgError(err)
	}
	if count == 0 {
		return lib.ErrNotFound
	}

	if err := ps.cacheService.InvalidateProductCaches(slug); err != nil {
		ps.logger.Warn("Failed to invalidate product caches", gecho.Field("error", err))
	}

	return nil
}

// DeleteProduct removes a product and its recipes.
func (ps *ProductService) DeleteProduct(ctx context.Context, slug string) error {
	product, err := ps.GetProductBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if product == nil {
		return lib.ErrNotFound
	}

	if _, err := database.Query[tables.Recipe](ps.db).Where("product_id", product.ID).Delete(ctx); err != nil {
		return lib.MapPgError(err)
	}

	count, err := database.Query[tables.Product](ps.db).Where("id", product.ID).Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if count == 0 {
		return lib.ErrNotFound
	}

	if err := ps.cacheService.InvalidateProductCaches(slug); err != nil {
		ps.logger.Warn("Failed to invalidate product caches", gecho.Field("error", err))
	}

	ps.logger.Info("Product deleted", gecho.Field("slug", slug))
	return nil
}

// GetAllProducts returns every product, active or not, for the admin panel.
func (ps *ProductService) GetAllProducts(ctx context.Context) ([]tables.Product, error) {
	products, err := database.Query[tables.Product](ps.db).
		OrderBy("sort_order", database.ASC).
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}
