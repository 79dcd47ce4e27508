package admin

import (
	"errors"
	"net/http"
	"strconv"

	"bcspace_server/lib"
	"bcspace_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// parsePagination reads limit/offset query parameters with sane bounds.
func parsePagination(r *http.Request) (int, int) {
	limit := 50
	offset := 0

	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}

	return limit, offset
}

// ListOrders handles GET /admin/orders with optional ?status= filtering.
func (arm *AdminRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	var status *tables.OrderStatus
	if s := r.URL.Query().Get("status"); s != "" {
		candidate := tables.OrderStatus(s)
		if !candidate.Valid() {
			gecho.BadRequest(w,
				gecho.WithMessage("Unknown order status"),
				gecho.Send(),
			)
			return
		}
		status = &candidate
	}

	orders, total, err := arm.orderService.GetAllOrders(r.Context(), status, limit, offset)
	if err != nil {
		arm.logger.Error("Failed to list orders", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to list orders"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders": orders,
			"total":  total,
			"limit":  limit,
			"offset": offset,
		}),
		gecho.Send(),
	)
}

type updateOrderStatusRequest struct {
	Status tables.OrderStatus `json:"status" validate:"required,oneof=pending paid shipped completed cancelled"`
}

func (arm *AdminRoutesManager) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid order ID"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[updateOrderStatusRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	if err := arm.orderService.UpdateOrderStatus(r.Context(), id, body.Status); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Order not found"),
				gecho.Send(),
			)
			return
		}
		// Transition errors are client mistakes, not server failures.
		gecho.BadRequest(w,
			gecho.WithMessage(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order status updated"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid order ID"),
			gecho.Send(),
		)
		return
	}

	if err := arm.orderService.SoftDeleteOrder(r.Context(), id); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Order not found"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to delete order", gecho.Field("order_id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to delete order"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order deleted"),
		gecho.Send(),
	)
}
