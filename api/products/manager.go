package products

import (
	"bcspace_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
	stockService   *services.StockService
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	stockService *services.StockService,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		productService: productService,
		stockService:   stockService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/products", prm.FetchActiveProducts)
	r.Get("/products/{slug}", prm.FetchProductBySlug)
	r.Post("/products/{slug}/max-stock", prm.ComputeMaxStock)
}
