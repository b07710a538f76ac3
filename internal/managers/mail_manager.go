// Package managers handles the sending of emails for account confirmation using the Mailgun service
// and the Hermes package for email formatting.
package managers

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/matcornic/hermes/v2"
	log "github.com/sirupsen/logrus"
)

// MailMgr is an interface that outlines the contract for email management.
// It includes a method for sending the email verification link to a new user.
type MailMgr interface {
	SendVerificationMail(email, token string) error
}

// MailManager is a concrete implementation of the MailMgr interface.
// It uses the Mailgun service for sending emails and the Hermes package for formatting emails.
type MailManager struct {
	Hermes  *hermes.Hermes
	Mailgun *mailgun.MailgunImpl
	appURL  string
}

var from = "Account Service <noreply@mail.account-service.dev>"
var environment string

// SendVerificationMail sends a verification email to a user with a link to confirm
// their email address. The email content is formatted using the Hermes package and
// sent using the Mailgun service.
func (mm *MailManager) SendVerificationMail(email, token string) error {
	if environment != "production" {
		log.Info("Skipping verification mail in development mode")
		return nil
	}

	verificationLink := fmt.Sprintf("%s/api/users/verify/%s", mm.appURL, token)
	mailBody := hermes.Email{
		Body: hermes.Body{
			Intros: []string{
				"Welcome to Account Service! We're very excited to have you on board.",
				"To complete your registration we need you to confirm your email address.",
			},
			Outros: []string{
				"The link is valid for 7 days. If you did not create an account, no further action is required.",
			},
			Actions: []hermes.Action{
				{
					Instructions: "To confirm your email address, please click the button below:",
					Button: hermes.Button{
						Text: "Confirm your email",
						Link: verificationLink,
					},
				},
			},
		},
	}

	emailBody, err := mm.Hermes.GenerateHTML(mailBody)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(2*time.Second))
	defer func() {
		if err := ctx.Err(); err != nil {
			log.Debug("Context error: ", err)
		}
		cancel()
		log.Debug("Context canceled")
	}()

	message := mm.Mailgun.NewMessage(from, "Confirm your email", "", email)
	message.SetHtml(emailBody)
	_, _, err = mm.Mailgun.Send(ctx, message)
	if err != nil {
		log.Warning("Error sending verification mail: " + err.Error())
		return err
	}
	log.Debug("Verification mail sent to ", email)

	return nil
}

// NewMailManager initializes a new MailManager instance with configured Mailgun and Hermes settings.
// It also checks the runtime environment to determine if emails should be sent.
// This function is used during the initialization phase of the application.
func NewMailManager() MailMgr {
	log.Info("Initializing mail manager")
	// Check if running in production
	environment = os.Getenv("ENVIRONMENT")

	if environment != "production" {
		log.Println("Running in development mode, email will not be sent to users")
	}

	apiKey := os.Getenv("MAILGUN_API_KEY")
	mailgunInstance := mailgun.NewMailgun("mail.account-service.dev", apiKey)
	mailgunInstance.SetAPIBase(mailgun.APIBaseEU)

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:8080"
	}

	mm := &MailManager{
		Hermes: &hermes.Hermes{
			Theme:         new(hermes.Default),
			TextDirection: hermes.TDLeftToRight,
			Product: hermes.Product{
				Name:        "Account Service",
				Link:        "https://account-service.dev/",
				Copyright:   "© Account Service",
				TroubleText: "If you’re having trouble with the button '{ACTION}', copy and paste the URL below into your web browser.",
			},
		},
		Mailgun: mailgunInstance,
		appURL:  appURL,
	}
	log.Info("Initialized mail manager")
	return mm
}
