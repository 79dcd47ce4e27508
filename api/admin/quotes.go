package admin

import (
	"errors"
	"net/http"

	"bcspace_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (arm *AdminRoutesManager) ListQuotes(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	quotes, total, err := arm.quoteService.GetAllQuotes(r.Context(), limit, offset)
	if err != nil {
		arm.logger.Error("Failed to list quotes", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to list quotes"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"quotes": quotes,
			"total":  total,
			"limit":  limit,
			"offset": offset,
		}),
		gecho.Send(),
	)
}

type updateQuoteStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted quoted closed"`
}

func (arm *AdminRoutesManager) UpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid quote ID"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[updateQuoteStatusRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	if err := arm.quoteService.UpdateQuoteStatus(r.Context(), id, body.Status); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("Quote not found"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to update quote", gecho.Field("quote_id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to update quote"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Quote updated"),
		gecho.Send(),
	)
}
