package services

import (
	"bcspace_server/database"
	"bcspace_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService    *AuthService
	CacheService   *CacheService
	NotifyService  *NotifyService
	EmailService   *EmailService
	HealthService  *HealthService
	ProductService *ProductService
	StockService   *StockService
	CouponService  *CouponService
	OrderService   *OrderService
	QuoteService   *QuoteService
	StorageService *StorageService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	notifyService := NewNotifyService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	authService := NewAuthService(cfg, logger, db, cacheService)
	healthService := NewHealthService(logger, db, cacheService)
	productService := NewProductService(logger, db, cacheService)
	stockService := NewStockService(logger, db, productService)
	couponService := NewCouponService(logger, db)
	orderService := NewOrderService(logger, cfg, db, productService, stockService, couponService, notifyService, emailService)
	quoteService := NewQuoteService(logger, cfg, db, notifyService, emailService)
	storageService := NewStorageService(logger, cfg)

	return &ServiceManager{
		AuthService:    authService,
		CacheService:   cacheService,
		NotifyService:  notifyService,
		EmailService:   emailService,
		HealthService:  healthService,
		ProductService: productService,
		StockService:   stockService,
		CouponService:  couponService,
		OrderService:   orderService,
		QuoteService:   quoteService,
		StorageService: storageService,
	}
}
