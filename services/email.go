package services

import (
	"fmt"
	"log"

	"id_console_app_go/config"

	"github.com/resend/resend-go/v2"
)

// SendWaitingCardEmail mails a generated acknowledgement card to the
// applicant. In test mode the email is logged instead of sent.
func SendWaitingCardEmail(cfg *config.Config, to, applicantName, filename string, pdf []byte) error {
	subject := "Your National ID application acknowledgement"
	htmlBody := fmt.Sprintf(
		"<p>Dear %s,</p><p>Your application acknowledgement card is attached. "+
			"Keep it safe: it is required when collecting your ID card. "+
			"This acknowledgement is not an identity card.</p>",
		applicantName)

	if cfg.EmailTestMode {
		log.Printf("EMAIL (test mode - not sent) To: %s Subject: %s Attachment: %s (%d bytes)",
			to, subject, filename, len(pdf))
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
		Attachments: []*resend.Attachment{
			{
				Filename:    filename,
				Content:     pdf,
				ContentType: "application/pdf",
			},
		},
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Acknowledgement card emailed via Resend (ID: %s) to: %s", sent.Id, to)
	return nil
}
