package orders

import (
	"errors"
	"net/http"

	"bcspace_server/lib"
	"bcspace_server/structs"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid order request"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	// Create order using service (handles repricing, stock allocation,
	// coupon redemption and notifications)
	order, rejections, err := orm.orderService.CreateOrderFromRequest(r.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrEmptyCart):
			gecho.BadRequest(w,
				gecho.WithMessage("Cart is empty"),
				gecho.Send(),
			)
		case errors.Is(err, lib.ErrInsufficientStock):
			// Per-line rejections so the storefront can point at the
			// exact lines that no longer fit.
			gecho.Conflict(w,
				gecho.WithMessage("Some items are no longer in stock"),
				gecho.WithData(map[string]any{"rejections": rejections}),
				gecho.Send(),
			)
		case errors.Is(err, lib.ErrInvalidCoupon):
			gecho.BadRequest(w,
				gecho.WithMessage(err.Error()),
				gecho.Send(),
			)
		default:
			orm.logger.Error("Failed to create order", gecho.Field("error", err))
			gecho.InternalServerError(w,
				gecho.WithMessage("Failed to create order"),
				gecho.Send(),
			)
		}
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order created"),
		gecho.WithData(map[string]any{
			"order_number":    order.OrderNumber,
			"order_id":        order.Id,
			"status":          order.Status,
			"total_amount":    order.TotalAmount,
			"shipping_cost":   order.ShippingCost,
			"discount_amount": order.DiscountAmount,
			"estimated_date":  order.EstimatedDate,
		}),
		gecho.Send(),
	)
}
