package admin

import (
	"net/http"

	"bcspace_server/lib"
	"bcspace_server/structs"
	"bcspace_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (arm *AdminRoutesManager) GetProductRecipes(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := arm.productService.GetProductBySlug(r.Context(), slug)
	if err != nil {
		arm.logger.Error("Failed to fetch product", gecho.Field("slug", slug), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to fetch product"),
			gecho.Send(),
		)
		return
	}
	if product == nil {
		gecho.NotFound(w,
			gecho.WithMessage("Product not found"),
			gecho.Send(),
		)
		return
	}

	recipes, err := arm.stockService.GetRecipesForProduct(r.Context(), product.ID)
	if err != nil {
		arm.logger.Error("Failed to fetch recipes", gecho.Field("slug", slug), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to fetch recipes"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"recipes": recipes}),
		gecho.Send(),
	)
}

type recipeEntry struct {
	MaterialID      uuid.UUID          `json:"material_id" validate:"required"`
	QuantityPerUnit int                `json:"quantity_per_unit" validate:"required,gt=0"`
	MatchCondition  *structs.Condition `json:"match_condition,omitempty"`
}

type setRecipesRequest struct {
	Recipes []recipeEntry `json:"recipes" validate:"dive"`
}

// SetProductRecipes handles PUT /admin/products/{slug}/recipes. The full
// recipe list is replaced atomically; an empty list makes the product
// unconstrained by stock.
func (arm *AdminRoutesManager) SetProductRecipes(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	body, err := lib.ExtractAndValidateBody[setRecipesRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid recipe payload"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := arm.productService.GetProductBySlug(r.Context(), slug)
	if err != nil {
		arm.logger.Error("Failed to fetch product", gecho.Field("slug", slug), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to fetch product"),
			gecho.Send(),
		)
		return
	}
	if product == nil {
		gecho.NotFound(w,
			gecho.WithMessage("Product not found"),
			gecho.Send(),
		)
		return
	}

	recipes := make([]tables.Recipe, 0, len(body.Recipes))
	for _, entry := range body.Recipes {
		recipes = append(recipes, tables.Recipe{
			ProductID:       product.ID,
			MaterialID:      entry.MaterialID,
			QuantityPerUnit: entry.QuantityPerUnit,
			MatchCondition:  entry.MatchCondition,
		})
	}

	if err := arm.stockService.SetProductRecipes(r.Context(), product.ID, recipes); err != nil {
		arm.logger.Error("Failed to set recipes", gecho.Field("slug", slug), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to update recipes"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Recipes updated"),
		gecho.Send(),
	)
}
