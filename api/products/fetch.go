package products

import (
	"net/http"

	"bcspace_server/handling"
	"bcspace_server/lib"
	"bcspace_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchActiveProducts handles GET /products, the storefront catalog. Only
// active products are visible here; the admin panel sees everything.
func (prm *ProductRoutesManager) FetchActiveProducts(w http.ResponseWriter, r *http.Request) {
	products, err := prm.productService.GetActiveProducts(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to fetch products", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": products,
			"count":    len(products),
		}),
		gecho.Send(),
	)
}

// FetchProductBySlug handles GET /products/{slug} for the product page,
// including the customization schema and pricing rule the storefront
// renders from.
func (prm *ProductRoutesManager) FetchProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("Product slug is required"),
			gecho.Send(),
		)
		return
	}

	product, err := prm.productService.GetProductBySlug(r.Context(), slug)
	if err != nil {
		handling.HandleError(err, "Failed to fetch product", prm.logger, w)
		return
	}
	if product == nil || !product.IsActive {
		gecho.NotFound(w,
			gecho.WithMessage("Product not found"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}

// ComputeMaxStock handles POST /products/{slug}/max-stock. It answers "how
// many more of this configuration can be added to the cart" from current
// material levels. The answer is advisory; checkout re-validates.
func (prm *ProductRoutesManager) ComputeMaxStock(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	body, err := lib.ExtractAndValidateBody[structs.MaxStockRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	maxQty, err := prm.stockService.ComputeMaxStock(r.Context(), slug, body)
	if err != nil {
		handling.HandleError(err, "Failed to compute available stock", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"max_quantity": maxQty,
			"unlimited":    maxQty < 0,
		}),
		gecho.Send(),
	)
}
