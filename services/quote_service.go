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
)

type QuoteService struct {
	logger        *gecho.Logger
	cfg           *structs.Config
	db            *database.DB
	notifyService *NotifyService
	emailService  *EmailService
}

func NewQuoteService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	notifyService *NotifyService,
	emailService *EmailService,
) *QuoteService {
	return &QuoteService{
		logger:        logger,
		cfg:           cfg,
		db:            db,
		notifyService: notifyService,
		emailService:  emailService,
	}
}

// CreateQuote stores a custom order request and pings the vendor. Like
// order notifications, the ping is best-effort.
func (qs *QuoteService) CreateQuote(ctx context.Context, req *structs.QuoteRequest) (*tables.CustomQuote, error) {
	var budget *int64
	if req.Budget > 0 {
		budget = &req.Budget
	}

	quote := &tables.CustomQuote{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Description: req.Description,
		Quantity:    req.Quantity,
		Budget:      budget,
		ImageURLs:   req.ImageURLs,
		Status:      "new",
		CreatedAt:   time.Now(),
	}

	created, err := database.Query[tables.CustomQuote](qs.db).Insert(ctx, quote)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), qs.cfg.Notify.Timeout)
		defer cancel()

		qs.notifyService.SendSystemAlert(notifyCtx, fmt.Sprintf(
			"New custom quote request from %s (%s): %dx %s",
			created.Name, created.Email, created.Quantity, created.Description))

		if emailErr := qs.emailService.SendQuoteReceivedEmail(created.Name, created.Email); emailErr != nil {
			qs.logger.Error("Failed to send quote acknowledgement email",
				gecho.Field("error", emailErr),
				gecho.Field("quote_id", created.ID))
		}
	}()

	qs.logger.Info("Custom quote created", gecho.Field("quote_id", created.ID))
	return created, nil
}

// GetAllQuotes lists quote requests for the admin panel.
func (qs *QuoteService) GetAllQuotes(ctx context.Context, limit, offset int) ([]tables.CustomQuote, int, error) {
	query := database.Query[tables.CustomQuote](qs.db)

	count, err := query.Count(ctx)
	if err != nil {
		return nil, 0, lib.MapPgError(err)
	}

	quotes, err := query.
		OrderBy("created_at", database.DESC).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, lib.MapPgError(err)
	}

	return quotes, count, nil
}

// UpdateQuoteStatus lets the admin track follow-up progress.
func (qs *QuoteService) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, status string) error {
	count, err := database.Query[tables.CustomQuote](qs.db).
		Where("id", id).
		Update(ctx, map[string]any{"status": status})
	if err != nil {
		return lib.MapPgError(err)
	}
	if count == 0 {
		return lib.ErrNotFound
	}
	return nil
}
