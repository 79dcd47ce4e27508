package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"bcspace_server/structs"

	"github.com/MonkyMars/gecho"
)

// NotifyService pushes order and stock events to the notification webhook.
// The webhook fans out to the vendor's chat and the customer's inbox; every
// call here is best-effort and must never fail a checkout.
type NotifyService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *http.Client
}

func NewNotifyService(logger *gecho.Logger, cfg *structs.Config) *NotifyService {
	return &NotifyService{
		logger: logger,
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Notify.Timeout},
	}
}

// post sends a JSON payload to the webhook and decodes its envelope. The
// response only matters for logging.
func (ns *NotifyService) post(ctx context.Context, payload any) error {
	if ns.cfg.Notify.WebhookURL == "" {
		return fmt.Errorf("notification webhook not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ns.cfg.Notify.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ns.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope structs.WebhookResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil && envelope.Status == "error" {
		return fmt.Errorf("webhook reported error: %s", envelope.Message)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}

// SendOrderNotification delivers the order-shaped payload. Errors are
// logged and swallowed: the order already committed.
func (ns *NotifyService) SendOrderNotification(ctx context.Context, notification *structs.OrderNotification) {
	if err := ns.post(ctx, notification); err != nil {
		ns.logger.Error("Failed to send order notification",
			gecho.Field("error", err),
			gecho.Field("order_id", notification.OrderID))
		return
	}

	ns.logger.Info("Order notification sent", gecho.Field("order_id", notification.OrderID))
}

// SendSystemAlert delivers a discriminated system alert (low stock etc.).
func (ns *NotifyService) SendSystemAlert(ctx context.Context, message string) {
	alert := &structs.SystemAlert{
		Type:    "system_alert",
		Message: message,
	}

	if err := ns.post(ctx, alert); err != nil {
		ns.logger.Error("Failed to send system alert",
			gecho.Field("error", err),
			gecho.Field("message", message))
		return
	}

	ns.logger.Info("System alert sent", gecho.Field("message", message))
}
