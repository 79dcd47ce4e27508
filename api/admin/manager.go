package admin

import (
	"bcspace_server/api/middleware"
	"bcspace_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
	stockService   *services.StockService
	orderService   *services.OrderService
	couponService  *services.CouponService
	quoteService   *services.QuoteService
	notifyService  *services.NotifyService
	mw             *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	stockService *services.StockService,
	orderService *services.OrderService,
	couponService *services.CouponService,
	quoteService *services.QuoteService,
	notifyService *services.NotifyService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:         logger,
		productService: productService,
		stockService:   stockService,
		orderService:   orderService,
		couponService:  couponService,
		quoteService:   quoteService,
		notifyService:  notifyService,
		mw:             mw,
	}
}

func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(arm.mw.AdminAuthMiddleware)

		// Product management
		r.Get("/products", arm.ListAllProducts)
		r.Post("/products", arm.CreateProduct)
		r.Put("/products/{slug}", arm.UpdateProduct)
		r.Patch("/products/{slug}/active", arm.SetProductActive)
		r.Delete("/products/{slug}", arm.DeleteProduct)

		// Recipe management
		r.Get("/products/{slug}/recipes", arm.GetProductRecipes)
		r.Put("/products/{slug}/recipes", arm.SetProductRecipes)

		// Material inventory
		r.Get("/materials", arm.ListMaterials)
		r.Get("/materials/low-stock", arm.ListLowStockMaterials)
		r.Post("/materials/low-stock/alert", arm.DispatchLowStockAlert)
		r.Post("/materials", arm.CreateMaterial)
		r.Put("/materials/{id}", arm.UpdateMaterial)
		r.Delete("/materials/{id}", arm.DeleteMaterial)

		// Order management
		r.Get("/orders", arm.ListOrders)
		r.Patch("/orders/{id}/status", arm.UpdateOrderStatus)
		r.Delete("/orders/{id}", arm.DeleteOrder)

		// Coupon management
		r.Get("/coupons", arm.ListCoupons)
		r.Post("/coupons", arm.CreateCoupon)
		r.Put("/coupons/{id}", arm.UpdateCoupon)
		r.Delete("/coupons/{id}", arm.DeleteCoupon)

		// Custom quote requests
		r.Get("/quotes", arm.ListQuotes)
		r.Patch("/quotes/{id}/status", arm.UpdateQuoteStatus)
	})
}
