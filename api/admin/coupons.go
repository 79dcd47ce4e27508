package admin

import (
	"errors"
	"net/http"

	"bcspace_server/lib"
	"bcspace_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (arm *AdminRoutesManager) ListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := arm.couponService.GetAllCoupons(r.Context())
	if err != nil {
		arm.logger.Error("Failed to list coupons", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to list coupons"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"coupons": coupons,
			"count":   len(coupons),
		}),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[tables.Coupon](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid coupon payload"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	coupon, err := arm.couponService.CreateCoupon(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w,
				gecho.WithMessage("A coupon with this code already exists"),
				gecho.Send(),
			)
			return
		}
		gecho.BadRequest(w,
			gecho.WithMessage(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Coupon created"),
		gecho.WithData(map[string]any{"coupon": coupon}),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid coupon ID"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[tables.Coupon](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid coupon payload"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	coupon, err := arm.couponService.UpdateCoupon(r.Context(), id, body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Coupon not found"),
				gecho.Send(),
			)
			return
		}
		gecho.BadRequest(w,
			gecho.WithMessage(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Coupon updated"),
		gecho.WithData(map[string]any{"coupon": coupon}),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid coupon ID"),
			gecho.Send(),
		)
		return
	}

	if err := arm.couponService.DeleteCoupon(r.Context(), id); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Coupon not found"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to delete coupon", gecho.Field("coupon_id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to delete coupon"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Coupon deleted"),
		gecho.Send(),
	)
}
