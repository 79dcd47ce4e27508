package services

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"bcspace_server/checkout"
	"bcspace_server/database"
	"bcspace_server/lib"
	"bcspace_server/pricing"
	"bcspace_server/structs"
	"bcspace_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type OrderService struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	db             *database.DB
	productService *ProductService
	stockService   *StockService
	couponService  *CouponService
	notifyService  *NotifyService
	emailService   *EmailService
}

func NewOrderService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	productService *ProductService,
	stockService *StockService,
	couponService *CouponService,
	notifyService *NotifyService,
	emailService *EmailService,
) *OrderService {
	return &OrderService{
		logger:         logger,
		cfg:            cfg,
		db:             db,
		productService: productService,
		stockService:   stockService,
		couponService:  couponService,
		notifyService:  notifyService,
		emailService:   emailService,
	}
}

// shippingCost derives the charge for a shipping method. Pickup variants
// cost nothing to ship; everything else starts at the configured default
// and may be waived by the free-shipping threshold later.
func (os *OrderService) shippingCost(method structs.ShippingMethod) int64 {
	switch method {
	case structs.ShippingPickup, structs.ShippingFriend:
		return 0
	default:
		return os.cfg.Shop.DefaultShippingCost
	}
}

// CreateOrderFromRequest runs the whole checkout: merge, validate, price,
// allocate stock and persist, all server-side. The client's displayed
// prices are never trusted. On a stock shortfall the returned rejections
// explain which lines failed and nothing is written.
func (os *OrderService) CreateOrderFromRequest(ctx context.Context, req *structs.OrderRequest) (order *tables.Order, rejections []structs.StockRejection, err error) {
	merged := checkout.MergeLines(req.Lines)
	if len(merged) == 0 {
		return nil, nil, lib.ErrEmptyCart
	}

	// Load every product once, up front.
	slugs := make([]string, 0, len(merged))
	for _, line := range merged {
		slugs = append(slugs, line.ProductID)
	}
	productList, err := os.productService.GetProductsBySlugs(ctx, dedupe(slugs))
	if err != nil {
		return nil, nil, err
	}
	products := make(map[string]*tables.Product, len(productList))
	for i := range productList {
		products[productList[i].Slug] = &productList[i]
	}

	// Validate configurations and reprice every line.
	for i := range merged {
		line := &merged[i]
		product, exists := products[line.ProductID]
		if !exists {
			return nil, nil, fmt.Errorf("product not found: %s", line.ProductID)
		}
		if !product.IsActive {
			return nil, nil, fmt.Errorf("product %s is no longer available", product.Name)
		}

		if cfgErr := structs.ValidateConfiguration(product.ConfigSchema, line.Config); cfgErr != nil {
			return nil, nil, fmt.Errorf("invalid configuration for %s: %w", product.Name, cfgErr)
		}

		line.ProductName = product.Name
		line.UnitPrice = pricing.Unit(&product.PricingRule, product.BasePrice(), line.Config, line.Quantity)
		line.LinePrice = pricing.Line(&product.PricingRule, product.BasePrice(), line.Config, line.Quantity)
	}

	// Validate the coupon before opening the transaction.
	var coupon *structs.CouponResult
	if req.CouponCode != "" {
		coupon, err = os.couponService.Validate(ctx, req.CouponCode)
		if err != nil {
			return nil, nil, err
		}
		if !coupon.Valid {
			return nil, nil, fmt.Errorf("%w: %s", lib.ErrInvalidCoupon, coupon.Reason)
		}
		if !checkout.MeetsMinSpend(coupon, merged) {
			return nil, nil, fmt.Errorf("%w: order does not meet the minimum spend of %d", lib.ErrInvalidCoupon, coupon.MinSpend)
		}
	}

	totals := checkout.ComputeTotals(merged, os.shippingCost(req.Customer.ShippingMethod), os.cfg.Shop.FreeShippingThreshold, coupon)
	estimatedDate := checkout.EstimatedShipDate(time.Now(), merged)

	tx, err := os.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, lib.MapPgError(err)
	}

	defer func() {
		if p := recover(); p != nil {
			os.logger.Error(fmt.Sprintf("panic recovered in checkout: %v", p),
				gecho.Field("stack_trace", string(debug.Stack())))
			tx.Rollback()
			err = fmt.Errorf("panic recovered: %v", p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	// Authoritative stock check: locks material rows, verifies the whole
	// order and decrements. Advisory client-side checks may be stale.
	var lowStock []tables.Material
	rejections, lowStock, err = os.stockService.ValidateAndConsume(ctx, tx, merged, products)
	if err != nil {
		return nil, rejections, err
	}

	if coupon != nil {
		if err = os.couponService.IncrementUsage(ctx, tx, coupon.Code); err != nil {
			return nil, nil, err
		}
	}

	order = &tables.Order{
		Id:             uuid.New(),
		OrderNumber:    lib.GenerateOrderNumber(),
		Name:           req.Customer.Name,
		Email:          req.Customer.Email,
		Phone:          req.Customer.Phone,
		ShippingMethod: req.Customer.ShippingMethod,
		Address:        formatAddress(&req.Customer),
		NeedProof:      req.Customer.NeedProof,
		Items:          merged,
		ShippingCost:   totals.Shipping,
		DiscountAmount: totals.Discount,
		TotalAmount:    totals.Total,
		EstimatedDate:  estimatedDate,
		Status:         tables.OrderStatusPending,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if coupon != nil {
		order.CouponCode = coupon.Code
	}

	if _, err = tx.NewInsert().Model(order).Exec(ctx); err != nil {
		err = lib.MapPgError(err)
		return nil, nil, err
	}

	// Notifications are fire-and-forget: the order is placed either way.
	notification := os.buildNotification(order, products)
	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), os.cfg.Notify.Timeout)
		defer cancel()

		os.notifyService.SendOrderNotification(notifyCtx, notification)

		if emailErr := os.emailService.SendOrderConfirmationEmail(notification); emailErr != nil {
			os.logger.Error("Failed to send order confirmation email",
				gecho.Field("error", emailErr),
				gecho.Field("order_number", order.OrderNumber))
		}
	}()

	if len(lowStock) > 0 && os.cfg.Shop.LowStockWebhookOn {
		go os.alertLowStock(lowStock)
	}

	os.logger.Info("Order created",
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("total_amount", order.TotalAmount),
		gecho.Field("lines", len(order.Items)))

	return order, nil, nil
}

// buildNotification resolves each line's raw option values to their
// display labels so the webhook and email read like the storefront did.
func (os *OrderService) buildNotification(order *tables.Order, products map[string]*tables.Product) *structs.OrderNotification {
	items := make([]structs.NotifyItem, 0, len(order.Items))
	for _, line := range order.Items {
		item := structs.NotifyItem{
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Price:       line.LinePrice,
		}

		if product := products[line.ProductID]; product != nil && len(line.Config) > 0 {
			item.Options = make(map[string]string, len(line.Config))
			for i := range product.ConfigSchema {
				field := &product.ConfigSchema[i]
				value, present := line.Config[field.Name]
				if !present || !field.Visible(line.Config) {
					continue
				}
				item.Options[field.Label] = field.OptionLabel(value)
			}
		}

		items = append(items, item)
	}

	return &structs.OrderNotification{
		OrderID: order.OrderNumber,
		Customer: structs.NotifyCustomer{
			Name:           order.Name,
			Email:          order.Email,
			Phone:          order.Phone,
			ShippingMethod: order.ShippingMethod,
			Address:        order.Address,
		},
		Items:         items,
		TotalAmount:   order.TotalAmount,
		EstimatedDate: order.EstimatedDate,
	}
}

func (os *OrderService) alertLowStock(materials []tables.Material) {
	ctx, cancel := context.WithTimeout(context.Background(), os.cfg.Notify.Timeout)
	defer cancel()

	for _, m := range materials {
		os.notifyService.SendSystemAlert(ctx, fmt.Sprintf(
			"Low stock: %s has %d left (safety stock %d)",
			m.Name, m.CurrentStock, m.SafetyStock))
	}
}

// formatAddress flattens the method-specific delivery fields into one
// display string for the order record.
func formatAddress(c *structs.Customer) string {
	switch c.ShippingMethod {
	case structs.ShippingStore:
		return c.StoreName
	case structs.ShippingPost:
		return fmt.Sprintf("%s%s%s", c.City, c.District, c.Address)
	case structs.ShippingPickup:
		if c.PickupDate != "" || c.PickupTime != "" {
			return fmt.Sprintf("%s (%s %s)", c.PickupLocation, c.PickupDate, c.PickupTime)
		}
		return c.PickupLocation
	case structs.ShippingFriend:
		return c.FriendName
	default:
		return c.Address
	}
}

// GetOrderByOrderNumber retrieves an order for customer-facing tracking.
func (os *OrderService) GetOrderByOrderNumber(ctx context.Context, orderNumber string) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("order_number", orderNumber).
		WhereNull("deleted_at").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return order, nil
}

// GetAllOrders retrieves orders for the admin panel with optional status
// filtering and pagination.
func (os *OrderService) GetAllOrders(ctx context.Context, status *tables.OrderStatus, limit, offset int) ([]tables.Order, int, error) {
	query := database.Query[tables.Order](os.db).
		WhereNull("deleted_at")

	if status != nil {
		query = query.Where("status", *status)
	}

	count, err := query.Count(ctx)
	if err != nil {
		return nil, 0, lib.MapPgError(err)
	}

	orders, err := query.
		OrderBy("created_at", database.DESC).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, lib.MapPgError(err)
	}

	return orders, count, nil
}

// UpdateOrderStatus moves an order along the fulfillment chain, rejecting
// transitions the chain does not allow.
func (os *OrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, newStatus tables.OrderStatus) error {
	order, err := database.Query[tables.Order](os.db).
		Where("id", orderID).
		WhereNull("deleted_at").
		First(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if order == nil {
		return lib.ErrNotFound
	}

	if !tables.ValidStatusTransition(order.Status, newStatus) {
		return fmt.Errorf("invalid status transition from %s to %s", order.Status, newStatus)
	}

	if _, err := database.Query[tables.Order](os.db).
		Where("id", orderID).
		Update(ctx, map[string]any{
			"status":     newStatus,
			"updated_at": time.Now(),
		}); err != nil {
		return lib.MapPgError(err)
	}

	os.logger.Info("Order status updated",
		gecho.Field("order_id", orderID),
		gecho.Field("old_status", order.Status),
		gecho.Field("new_status", newStatus))

	return nil
}

// SoftDeleteOrder hides an order from every listing without losing it.
func (os *OrderService) SoftDeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	count, err := database.SoftDelete[tables.Order](os.db, ctx, orderID)
	if err != nil {
		return lib.MapPgError(err)
	}
	if count == 0 {
		return lib.ErrNotFound
	}

	os.logger.Info("Order soft deleted", gecho.Field("order_id", orderID))
	return nil
}
