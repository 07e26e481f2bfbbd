package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"spellbound/internal/models"
)

// ProgressSummary is the per-child snapshot a progress email reports.
type ProgressSummary struct {
	ChildName  string
	Grade      models.GradeLevel
	Level      int
	XP         int
	Coins      int
	SavedLists int
}

// ReportService sends parent progress emails via Amazon SES. When no from
// address is configured the service runs disabled and sends are skipped.
type ReportService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
}

// NewReportService creates a new report service
func NewReportService(awsRegion, fromEmail, fromName string) (*ReportService, error) {
	if fromEmail == "" {
		log.Println("Report service disabled: SES_FROM_EMAIL not configured")
		return &ReportService{enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Report service enabled: from=%s, region=%s", fromEmail, awsRegion)
	return &ReportService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
	}, nil
}

// IsEnabled returns whether the report service is enabled
func (s *ReportService) IsEnabled() bool {
	return s.enabled
}

// SendProgressReport emails a parent a summary of one child's progress.
func (s *ReportService) SendProgressReport(ctx context.Context, toEmail string, summary ProgressSummary) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): progress report to %s", toEmail)
		return nil
	}

	subject := fmt.Sprintf("%s's Spelling Progress", summary.ChildName)
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #4ecdc4; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.stat { font-size: 18px; margin: 8px 0; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header"><h1>Spelling Progress</h1></div>
		<div class="content">
			<p>Here is how %s (%s) is doing:</p>
			<div class="stat">Level: <strong>%d</strong></div>
			<div class="stat">XP: <strong>%d</strong></div>
			<div class="stat">Coins: <strong>%d</strong></div>
			<div class="stat">Saved word lists: <strong>%d</strong></div>
		</div>
	</div>
</body>
</html>`,
		summary.ChildName, summary.Grade.Label(),
		summary.Level, summary.XP, summary.Coins, summary.SavedLists)

	textBody := fmt.Sprintf(
		"Spelling progress for %s (%s)\n\nLevel: %d\nXP: %d\nCoins: %d\nSaved word lists: %d\n",
		summary.ChildName, summary.Grade.Label(),
		summary.Level, summary.XP, summary.Coins, summary.SavedLists)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *ReportService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Printf("Email sent successfully: to=%s, subject=%s", toEmail, subject)
	return nil
}
