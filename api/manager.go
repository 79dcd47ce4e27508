package api

import (
	"bcspace_server/api/admin"
	"bcspace_server/api/auth"
	"bcspace_server/api/coupons"
	"bcspace_server/api/health"
	"bcspace_server/api/middleware"
	"bcspace_server/api/orders"
	"bcspace_server/api/products"
	"bcspace_server/api/quotes"
	"bcspace_server/api/uploads"
	"bcspace_server/services"
	"bcspace_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes *products.ProductRoutesManager
	orderRoutes   *orders.OrderRoutesManager
	couponRoutes  *coupons.CouponRoutesManager
	quoteRoutes   *quotes.QuoteRoutesManager
	uploadRoutes  *uploads.UploadRoutesManager
	authRoutes    *auth.AuthRoutesManager
	adminRoutes   *admin.AdminRoutesManager
	healthRoutes  *health.HealthRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	sm *services.ServiceManager,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		productRoutes: products.NewProductRoutesManager(logger, sm.ProductService, sm.StockService),
		orderRoutes:   orders.NewOrderRoutesManager(logger, sm.OrderService),
		couponRoutes:  coupons.NewCouponRoutesManager(logger, sm.CouponService),
		quoteRoutes:   quotes.NewQuoteRoutesManager(logger, sm.QuoteService),
		uploadRoutes:  uploads.NewUploadRoutesManager(logger, sm.StorageService),
		authRoutes:    auth.NewAuthRoutesManager(logger, cfg, sm.AuthService, sm.CacheService),
		adminRoutes:   admin.NewAdminRoutesManager(logger, sm.ProductService, sm.StockService, sm.OrderService, sm.CouponService, sm.QuoteService, sm.NotifyService, mw),
		healthRoutes:  health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.couponRoutes.RegisterRoutes(r)
	rm.quoteRoutes.RegisterRoutes(r)
	rm.uploadRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
