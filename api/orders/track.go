package orders

import (
	"net/http"

	"bcspace_server/handling"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// TrackOrder handles GET /orders/{orderNumber}. Order numbers are long
// enough to be unguessable, so lookup by number alone is acceptable for
// customer-facing tracking.
func (orm *OrderRoutesManager) TrackOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("Order number is required"),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.GetOrderByOrderNumber(r.Context(), orderNumber)
	if err != nil {
		handling.HandleError(err, "Failed to fetch order", orm.logger, w)
		return
	}
	if order == nil {
		gecho.NotFound(w,
			gecho.WithMessage("Order not found"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"order_number":   order.OrderNumber,
			"status":         order.Status,
			"items":          order.Items,
			"total_amount":   order.TotalAmount,
			"estimated_date": order.EstimatedDate,
			"created_at":     order.CreatedAt,
		}),
		gecho.Send(),
	)
}
