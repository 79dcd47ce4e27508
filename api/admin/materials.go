package admin

import (
	"errors"
	"fmt"
	"net/http"

	"bcspace_server/lib"
	"bcspace_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (arm *AdminRoutesManager) ListMaterials(w http.ResponseWriter, r *http.Request) {
	materials, err := arm.stockService.GetMaterials(r.Context())
	if err != nil {
		arm.logger.Error("Failed to list materials", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to list materials"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"materials": materials,
			"count":     len(materials),
		}),
		gecho.Send(),
	)
}

// ListLowStockMaterials handles GET /admin/materials/low-stock for the
// reorder dashboard.
func (arm *AdminRoutesManager) ListLowStockMaterials(w http.ResponseWriter, r *http.Request) {
	materials, err := arm.stockService.LowStockMaterials(r.Context())
	if err != nil {
		arm.logger.Error("Failed to list low stock materials", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to list low stock materials"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"materials": materials,
			"count":     len(materials),
		}),
		gecho.Send(),
	)
}

// DispatchLowStockAlert handles POST /admin/materials/low-stock/alert: a
// manual re-send of the low-stock webhook, for when the automatic one
// after checkout was missed.
func (arm *AdminRoutesManager) DispatchLowStockAlert(w http.ResponseWriter, r *http.Request) {
	materials, err := arm.stockService.LowStockMaterials(r.Context())
	if err != nil {
		arm.logger.Error("Failed to check low stock", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to check low stock"),
			gecho.Send(),
		)
		return
	}

	for _, m := range materials {
		arm.notifyService.SendSystemAlert(r.Context(), fmt.Sprintf(
			"Low stock: %s has %d left (safety stock %d)",
			m.Name, m.CurrentStock, m.SafetyStock))
	}

	gecho.Success(w,
		gecho.WithMessage("Low stock alerts dispatched"),
		gecho.WithData(map[string]any{"alerted": len(materials)}),
		gecho.Send(),
	)
}

type materialRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	CurrentStock int    `json:"current_stock" validate:"gte=0"`
	SafetyStock  int    `json:"safety_stock" validate:"gte=0"`
}

func (arm *AdminRoutesManager) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[materialRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid material payload"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	material, err := arm.stockService.CreateMaterial(r.Context(), &tables.Material{
		Name:         body.Name,
		CurrentStock: body.CurrentStock,
		SafetyStock:  body.SafetyStock,
	})
	if err != nil {
		arm.logger.Error("Failed to create material", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to create material"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Material created"),
		gecho.WithData(map[string]any{"material": material}),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) UpdateMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid material ID"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[materialRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid material payload"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	material, err := arm.stockService.UpdateMaterial(r.Context(), id, body.CurrentStock, body.SafetyStock, body.Name)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Material not found"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to update material", gecho.Field("material_id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to update material"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Material updated"),
		gecho.WithData(map[string]any{"material": material}),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid material ID"),
			gecho.Send(),
		)
		return
	}

	if err := arm.stockService.DeleteMaterial(r.Context(), id); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Material not found"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to delete material", gecho.Field("material_id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to delete material"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Material deleted"),
		gecho.Send(),
	)
}
