package quotes

import (
	"net/http"

	"bcspace_server/handling"
	"bcspace_server/lib"
	"bcspace_server/services"
	"bcspace_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type QuoteRoutesManager struct {
	logger       *gecho.Logger
	quoteService *services.QuoteService
}

func NewQuoteRoutesManager(logger *gecho.Logger, quoteService *services.QuoteService) *QuoteRoutesManager {
	return &QuoteRoutesManager{
		logger:       logger,
		quoteService: quoteService,
	}
}

func (qrm *QuoteRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/quotes", qrm.CreateQuote)
}

// CreateQuote handles POST /quotes, the custom order request form.
func (qrm *QuoteRoutesManager) CreateQuote(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.QuoteRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid quote request"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	quote, err := qrm.quoteService.CreateQuote(r.Context(), body)
	if err != nil {
		handling.HandleError(err, "Failed to submit quote request", qrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Quote request received"),
		gecho.WithData(map[string]any{"quote_id": quote.ID}),
		gecho.Send(),
	)
}
