package services

import (
	"context"
	"fmt"
	"time"

	"bcspace_server/database"
	"bcspace_server/lib"
	"bcspace_server/structs"
	"bcspace_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type CouponService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCouponService(logger *gecho.Logger, db *database.DB) *CouponService {
	return &CouponService{
		logger: logger,
		db:     db,
	}
}

func invalidCoupon(reason string) *structs.CouponResult {
	return &structs.CouponResult{Valid: false, Reason: reason}
}

// Validate checks a coupon code and returns either its discount terms or a
// specific, user-correctable reason. An unknown code is not an error.
func (cs *CouponService) Validate(ctx context.Context, code string) (*structs.CouponResult, error) {
	normalized := tables.NormalizeCode(code)
	if normalized == "" {
		return invalidCoupon("coupon code is required"), nil
	}

	coupon, err := database.Query[tables.Coupon](cs.db).
		Where("code", normalized).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if coupon == nil {
		return invalidCoupon("coupon not found"), nil
	}

	if ok, reason := coupon.Usable(time.Now()); !ok {
		return invalidCoupon(reason), nil
	}

	return &structs.CouponResult{
		Valid:    true,
		Code:     coupon.Code,
		Type:     coupon.Type,
		Value:    coupon.Value,
		MinSpend: coupon.MinSpend,
		Scope:    coupon.Scope,
	}, nil
}

// IncrementUsage burns one redemption inside the checkout transaction.
// The guard in the WHERE clause makes the limit race-safe: two concurrent
// checkouts cannot both take the last slot.
func (cs *CouponService) IncrementUsage(ctx context.Context, tx bun.Tx, code string) error {
	res, err := tx.NewUpdate().
		Model((*tables.Coupon)(nil)).
		Set("used_count = used_count + 1").
		Set("updated_at = ?", time.Now()).
		Where("code = ?", tables.NormalizeCode(code)).
		Where("is_active = TRUE").
		Where("usage_limit IS NULL OR used_count < usage_limit").
		Exec(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return lib.ErrInvalidCoupon
	}
	return nil
}

// GetAllCoupons lists every coupon for the admin panel.
func (cs *CouponService) GetAllCoupons(ctx context.Context) ([]tables.Coupon, error) {
	coupons, err := database.Query[tables.Coupon](cs.db).
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return coupons, nil
}

// validateCouponTerms checks the type/value pair and normalizes the value
// for types that carry none. Runs on create and on update: an edited
// coupon must satisfy the same bounds as a fresh one.
func validateCouponTerms(coupon *tables.Coupon) error {
	switch coupon.Type {
	case structs.CouponPercentage:
		if coupon.Value < 1 || coupon.Value > 100 {
			return fmt.Errorf("percentage value must be between 1 and 100")
		}
	case structs.CouponFixedAmount:
		if coupon.Value <= 0 {
			return fmt.Errorf("fixed amount must be positive")
		}
	case structs.CouponFreeShipping:
		coupon.Value = 0
	default:
		return fmt.Errorf("unknown coupon type %q", coupon.Type)
	}
	return nil
}

// CreateCoupon inserts a new coupon with a normalized code.
func (cs *CouponService) CreateCoupon(ctx context.Context, coupon *tables.Coupon) (*tables.Coupon, error) {
	coupon.Code = tables.NormalizeCode(coupon.Code)
	if coupon.Code == "" {
		return nil, fmt.Errorf("coupon code is required")
	}
	if err := validateCouponTerms(coupon); err != nil {
		return nil, err
	}

	if coupon.ID == uuid.Nil {
		coupon.ID = uuid.New()
	}
	coupon.UsedCount = 0
	coupon.CreatedAt = time.Now()
	coupon.UpdatedAt = time.Now()

	created, err := database.Query[tables.Coupon](cs.db).Insert(ctx, coupon)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.logger.Info("Coupon created", gecho.Field("code", created.Code))
	return created, nil
}

// UpdateCoupon updates a coupon's terms. The usage counter is deliberately
// not editable.
func (cs *CouponService) UpdateCoupon(ctx context.Context, id uuid.UUID, coupon *tables.Coupon) (*tables.Coupon, error) {
	if err := validateCouponTerms(coupon); err != nil {
		return nil, err
	}

	updated, err := database.Query[tables.Coupon](cs.db).
		Where("id", id).
		UpdateReturning(ctx, map[string]any{
			"type":        coupon.Type,
			"value":       coupon.Value,
			"min_spend":   coupon.MinSpend,
			"scope":       coupon.Scope,
			"valid_from":  coupon.ValidFrom,
			"valid_until": coupon.ValidUntil,
			"usage_limit": coupon.UsageLimit,
			"is_active":   coupon.IsActive,
			"updated_at":  time.Now(),
		})
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if len(updated) == 0 {
		return nil, lib.ErrNotFound
	}
	return &updated[0], nil
}

// DeleteCoupon removes a coupon.
func (cs *CouponService) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	count, err := database.Query[tables.Coupon](cs.db).Where("id", id).Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if count == 0 {
		return lib.ErrNotFound
	}
	return nil
}
