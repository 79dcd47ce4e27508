package admin

import (
	"errors"
	"net/http"

	"bcspace_server/lib"
	"bcspace_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// ListAllProducts handles GET /admin/products. Unlike the storefront
// listing this includes inactive products.
func (arm *AdminRoutesManager) ListAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := arm.productService.GetAllProducts(r.Context())
	if err != nil {
		arm.logger.Error("Failed to list products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to list products"),
			gecho.Send(),
		)
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

func (arm *AdminRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[tables.Product](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid product payload"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := arm.productService.CreateProduct(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w,
				gecho.WithMessage("A product with this slug already exists"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to create product", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	body, err := lib.ExtractAndValidateBody[tables.Product](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid product payload"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := arm.productService.UpdateProduct(r.Context(), slug, body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Product not found"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to update product", gecho.Field("slug", slug), gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated"),
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}

type setActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// SetProductActive handles PATCH /admin/products/{slug}/active, the
// soft-hide switch. Hidden products stay orderable nowhere but keep their
// order history intact.
func (arm *AdminRoutesManager) SetProductActive(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	body, err := lib.ExtractAndValidateBody[setActiveRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	if err := arm.productService.SetProductActive(r.Context(), slug, body.IsActive); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Product not found"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to toggle product", gecho.Field("slug", slug), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to update product"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := arm.productService.DeleteProduct(r.Context(), slug); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Product not found"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to delete product", gecho.Field("slug", slug), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to delete product"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted"),
		gecho.Send(),
	)
}
