package services

import (
	"context"
	"fmt"
	"time"

	"bcspace_server/database"
	"bcspace_server/lib"
	"bcspace_server/stock"
	"bcspace_server/structs"
	"bcspace_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// StockService owns materials and recipes. The advisory path
// (ComputeMaxStock) reads without locks; the authoritative path
// (ValidateAndConsume) runs inside the checkout transaction with the
// material rows locked.
type StockService struct {
	logger         *gecho.Logger
	db             *database.DB
	productService *ProductService
}

func NewStockService(logger *gecho.Logger, db *database.DB, productService *ProductService) *StockService {
	return &StockService{
		logger:         logger,
		db:             db,
		productService: productService,
	}
}

// GetMaterials lists every material.
func (ss *StockService) GetMaterials(ctx context.Context) ([]tables.Material, error) {
	materials, err := database.Query[tables.Material](ss.db).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return materials, nil
}

// CreateMaterial inserts a new material.
func (ss *StockService) CreateMaterial(ctx context.Context, material *tables.Material) (*tables.Material, error) {
	if material.Name == "" {
		return nil, fmt.Errorf("material name is required")
	}
	if material.ID == uuid.Nil {
		material.ID = uuid.New()
	}
	material.CreatedAt = time.Now()
	material.UpdatedAt = time.Now()

	created, err := database.Query[tables.Material](ss.db).Insert(ctx, material)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return created, nil
}

// UpdateMaterial sets a material's stock levels. Used by the admin panel
// after restocking or manual counts.
func (ss *StockService) UpdateMaterial(ctx context.Context, id uuid.UUID, currentStock, safetyStock int, name string) (*tables.Material, error) {
	updates := map[string]any{
		"current_stock": currentStock,
		"safety_stock":  safetyStock,
		"updated_at":    time.Now(),
	}
	if name != "" {
		updates["name"] = name
	}

	updated, err := database.Query[tables.Material](ss.db).
		Where("id", id).
		UpdateReturning(ctx, updates)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if len(updated) == 0 {
		return nil, lib.ErrNotFound
	}
	return &updated[0], nil
}

// DeleteMaterial removes a material and the recipes that consume it.
func (ss *StockService) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	if _, err := database.Query[tables.Recipe](ss.db).Where("material_id", id).Delete(ctx); err != nil {
		return lib.MapPgError(err)
	}

	count, err := database.Query[tables.Material](ss.db).Where("id", id).Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if count == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// LowStockMaterials returns materials at or below their safety threshold.
func (ss *StockService) LowStockMaterials(ctx context.Context) ([]tables.Material, error) {
	materials, err := database.Query[tables.Material](ss.db).
		WhereRaw("current_stock <= safety_stock").
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return materials, nil
}

// GetRecipesForProduct lists the recipe rows of one product.
func (ss *StockService) GetRecipesForProduct(ctx context.Context, productID uuid.UUID) ([]tables.Recipe, error) {
	recipes, err := database.Query[tables.Recipe](ss.db).
		Where("product_id", productID).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return recipes, nil
}

// SetProductRecipes replaces a product's recipe rows atomically.
func (ss *StockService) SetProductRecipes(ctx context.Context, productID uuid.UUID, recipes []tables.Recipe) error {
	return database.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := database.QueryTx[tables.Recipe](tx).
			Where("product_id", productID).
			Delete(ctx); err != nil {
			return lib.MapPgError(err)
		}

		for i := range recipes {
			recipes[i].ProductID = productID
			if recipes[i].ID == uuid.Nil {
				recipes[i].ID = uuid.New()
			}
			if recipes[i].QuantityPerUnit <= 0 {
				return fmt.Errorf("recipe quantity per unit must be positive")
			}
		}

		if _, err := database.QueryTx[tables.Recipe](tx).InsertMany(ctx, recipes); err != nil {
			return lib.MapPgError(err)
		}
		return nil
	})
}

// recipesBySlug loads the recipe rows for a set of products keyed by slug.
func (ss *StockService) recipesBySlug(ctx context.Context, products map[string]*tables.Product) (map[string][]tables.Recipe, error) {
	ids := make([]any, 0, len(products))
	idToSlug := make(map[uuid.UUID]string, len(products))
	for slug, product := range products {
		ids = append(ids, product.ID)
		idToSlug[product.ID] = slug
	}

	if len(ids) == 0 {
		return map[string][]tables.Recipe{}, nil
	}

	recipes, err := database.Query[tables.Recipe](ss.db).
		WhereIn("product_id", ids).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	bySlug := make(map[string][]tables.Recipe)
	for _, recipe := range recipes {
		slug := idToSlug[recipe.ProductID]
		bySlug[slug] = append(bySlug[slug], recipe)
	}
	return bySlug, nil
}

// availability loads the current stock of the given materials.
func (ss *StockService) availability(ctx context.Context, materialIDs map[uuid.UUID]int) (map[uuid.UUID]int, error) {
	ids := make([]any, 0, len(materialIDs))
	for id := range materialIDs {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return map[uuid.UUID]int{}, nil
	}

	materials, err := database.Query[tables.Material](ss.db).
		WhereIn("id", ids).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	available := make(map[uuid.UUID]int, len(materials))
	for _, m := range materials {
		available[m.ID] = m.CurrentStock
	}
	return available, nil
}

// ComputeMaxStock answers "how many more of this configuration can be
// added", reserving the demand of the cart the shopper already holds.
// Advisory only: it reads without locks and checkout revalidates.
func (ss *StockService) ComputeMaxStock(ctx context.Context, slug string, req *structs.MaxStockRequest) (int, error) {
	product, err := ss.productService.GetProductBySlug(ctx, slug)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, lib.ErrNotFound
	}

	slugs := []string{slug}
	for _, line := range req.Cart {
		slugs = append(slugs, line.ProductID)
	}
	products, err := ss.productService.GetProductsBySlugs(ctx, dedupe(slugs))
	if err != nil {
		return 0, err
	}
	productsBySlug := make(map[string]*tables.Product, len(products))
	for i := range products {
		productsBySlug[products[i].Slug] = &products[i]
	}

	recipes, err := ss.recipesBySlug(ctx, productsBySlug)
	if err != nil {
		return 0, err
	}

	perUnit := stock.Demand(recipes[slug], req.Config, 1)
	if len(perUnit) == 0 {
		return stock.Unlimited, nil
	}

	demand := stock.CartDemand(recipes, req.Cart)
	for id, need := range perUnit {
		if _, ok := demand[id]; !ok {
			demand[id] = need // make sure availability covers these too
		}
	}

	available, err := ss.availability(ctx, demand)
	if err != nil {
		return 0, err
	}

	stock.Reserve(available, stock.CartDemand(recipes, req.Cart))
	return stock.MaxPurchasable(available, perUnit), nil
}

// ValidateAndConsume is the authoritative stock check inside the checkout
// transaction. It locks the involved material rows, verifies the whole
// order's demand and decrements stock. On shortfall it returns per-line
// rejections and a non-nil error; the caller rolls the transaction back.
// It also reports which materials dropped to or below their safety stock.
func (ss *StockService) ValidateAndConsume(
	ctx context.Context,
	tx bun.Tx,
	lines []structs.CartLine,
	products map[string]*tables.Product,
) ([]structs.StockRejection, []tables.Material, error) {
	recipes, err := ss.recipesBySlug(ctx, products)
	if err != nil {
		return nil, nil, err
	}

	demand := stock.CartDemand(recipes, lines)
	if len(demand) == 0 {
		return nil, nil, nil // nothing in the order consumes materials
	}

	ids := make([]any, 0, len(demand))
	for id := range demand {
		ids = append(ids, id)
	}

	// Lock the material rows for the rest of the transaction. Concurrent
	// checkouts competing for the same materials serialize here.
	materials, err := database.QueryTx[tables.Material](tx).
		WhereIn("id", ids).
		ForUpdate().
		All(ctx)
	if err != nil {
		return nil, nil, lib.MapPgError(err)
	}

	available := make(map[uuid.UUID]int, len(materials))
	names := make(map[uuid.UUID]string, len(materials))
	for _, m := range materials {
		available[m.ID] = m.CurrentStock
		names[m.ID] = m.Name
	}

	if ok, _ := stock.Covered(available, demand); !ok {
		return ss.rejections(lines, recipes, available, names), nil, lib.ErrInsufficientStock
	}

	// Decrement and collect low-stock warnings.
	var lowStock []tables.Material
	for _, m := range materials {
		need := demand[m.ID]
		if need == 0 {
			continue
		}

		remaining := m.CurrentStock - need
		if _, err := database.QueryTx[tables.Material](tx).
			Where("id", m.ID).
			Update(ctx, map[string]any{
				"current_stock": remaining,
				"updated_at":    time.Now(),
			}); err != nil {
			return nil, nil, lib.MapPgError(err)
		}

		if remaining <= m.SafetyStock {
			m.CurrentStock = remaining
			lowStock = append(lowStock, m)
		}
	}

	return nil, lowStock, nil
}

// rejections explains a shortfall per cart line: a line is rejected when
// its own demand cannot be met from what is available, walking the cart in
// order so earlier lines claim stock first.
func (ss *StockService) rejections(
	lines []structs.CartLine,
	recipes map[string][]tables.Recipe,
	available map[uuid.UUID]int,
	names map[uuid.UUID]string,
) []structs.StockRejection {
	remaining := make(map[uuid.UUID]int, len(available))
	for id, v := range available {
		remaining[id] = v
	}

	var rejected []structs.StockRejection
	for _, line := range lines {
		demand := stock.Demand(recipes[line.ProductID], line.Config, line.Quantity)
		if ok, short := stock.Covered(remaining, demand); !ok {
			rejected = append(rejected, structs.StockRejection{
				LineID:      line.ID,
				ProductName: line.ProductName,
				Reason:      fmt.Sprintf("not enough %s in stock", names[short]),
			})
			continue
		}
		stock.Reserve(remaining, demand)
	}
	return rejected
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
