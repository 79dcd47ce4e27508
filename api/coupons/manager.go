package coupons

import (
	"net/http"

	"bcspace_server/handling"
	"bcspace_server/lib"
	"bcspace_server/services"
	"bcspace_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CouponRoutesManager struct {
	logger        *gecho.Logger
	couponService *services.CouponService
}

func NewCouponRoutesManager(logger *gecho.Logger, couponService *services.CouponService) *CouponRoutesManager {
	return &CouponRoutesManager{
		logger:        logger,
		couponService: couponService,
	}
}

func (crm *CouponRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/coupons/validate", crm.ValidateCoupon)
}

// ValidateCoupon handles POST /coupons/validate so the storefront can show
// the discount before checkout. Redemption happens at checkout; this
// endpoint never increments usage.
func (crm *CouponRoutesManager) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CouponValidateRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	result, err := crm.couponService.Validate(r.Context(), body.Code)
	if err != nil {
		handling.HandleError(err, "Failed to validate coupon", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}
