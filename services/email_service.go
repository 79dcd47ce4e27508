package services

import (
	"fmt"
	"strings"
	"sync"

	"bcspace_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOrderConfirmationEmail sends the customer their order summary.
func (es *EmailService) SendOrderConfirmationEmail(notification *structs.OrderNotification) error {
	var items strings.Builder
	for _, item := range notification.Items {
		items.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td style="text-align:center;">%d</td><td style="text-align:right;">NT$%d</td></tr>`,
			item.ProductName, item.Quantity, item.Price,
		))
		for field, value := range item.Options {
			items.WriteString(fmt.Sprintf(
				`<tr><td colspan="3" style="padding-left:20px;color:#666;font-size:12px;">%s: %s</td></tr>`,
				field, value,
			))
		}
	}

	estimated := ""
	if notification.EstimatedDate != "" {
		estimated = fmt.Sprintf(`<p>Estimated ship date: <strong>%s</strong></p>`, notification.EstimatedDate)
	}

	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #e8927c; color: white; padding: 20px; text-align: center; }
				table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
				td, th { padding: 8px; border-bottom: 1px solid #ddd; }
				.total { font-weight: bold; font-size: 16px; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Thank you for your order!</h1>
				</div>
				<p>Hi %s,</p>
				<p>We received your order <strong>%s</strong> and will start on it shortly.</p>
				<table>
					<tr><th style="text-align:left;">Item</th><th>Qty</th><th style="text-align:right;">Price</th></tr>
					%s
					<tr class="total"><td colspan="2">Total</td><td style="text-align:right;">NT$%d</td></tr>
				</table>
				%s
				<div class="footer">
					<p>Questions? Reply to this email or reach us at %s.</p>
				</div>
			</div>
		</body>
		</html>
	`, notification.Customer.Name, notification.OrderID, items.String(), notification.TotalAmount, estimated, es.cfg.Email.SupportEmail)

	subject := fmt.Sprintf("Order confirmation %s", notification.OrderID)
	return es.SendEmail([]string{notification.Customer.Email}, subject, body)
}

// SendQuoteReceivedEmail acknowledges a custom quote request.
func (es *EmailService) SendQuoteReceivedEmail(name, email string) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body style="font-family: Arial, sans-serif; color: #333;">
			<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
				<h2>We got your request</h2>
				<p>Hi %s,</p>
				<p>Thanks for your custom order request. We'll review it and get back to you within two business days with a quote.</p>
				<p style="color:#666;font-size:12px;">Questions? Reach us at %s.</p>
			</div>
		</body>
		</html>
	`, name, es.cfg.Email.SupportEmail)

	return es.SendEmail([]string{email}, "We received your custom order request", body)
}
