package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/models"
)

// Courier carries contact submissions to the newsroom inbox. Delivery is an
// external concern behind this interface; the rest of the flow never depends
// on its outcome.
type Courier interface {
	Deliver(item models.ContactMessage) error
}

var courier Courier

func SetCourier(c Courier) {
	courier = c
}

// NewContactMessage persists the submission first, then dispatches it
// fire-and-forget. A courier failure is logged and queued as a retry notice
// for the sender; the submission itself already succeeded.
func NewContactMessage(accountId uint, item models.ContactMessage) (models.ContactMessage, error) {
	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	go func(item models.ContactMessage) {
		if courier == nil {
			return
		}
		if err := courier.Deliver(item); err != nil {
			log.Warn().Err(err).Uint("message", item.ID).Msg("Unable to deliver contact message...")
			PushFlash(accountId, FlashLevelError, "message received, but forwarding it failed; we will retry")
			return
		}
		database.C.Model(&item).Update("delivered", true)
		PushFlash(accountId, FlashLevelSuccess, "message sent, we will get back to you soon")
	}(item)

	return item, nil
}

// SMTPCourier forwards submissions over plain SMTP. No richer mail client is
// wired in on purpose: delivery is declared external, this is the thinnest
// bridge that satisfies it.
type SMTPCourier struct {
	Addr     string
	Username string
	Password string
	From     string
	To       string
}

func NewSMTPCourierFromConfig() *SMTPCourier {
	if len(viper.GetString("mailer.addr")) == 0 {
		return nil
	}
	return &SMTPCourier{
		Addr:     viper.GetString("mailer.addr"),
		Username: viper.GetString("mailer.username"),
		Password: viper.GetString("mailer.password"),
		From:     viper.GetString("mailer.from"),
		To:       viper.GetString("mailer.to"),
	}
}

func (v *SMTPCourier) Deliver(item models.ContactMessage) error {
	host := v.Addr
	if idx := strings.Index(host, ":"); idx >= 0 {
		host = host[:idx]
	}

	payload := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\nFrom %s <%s>:\r\n\r\n%s\r\n",
		v.From, v.To, item.Subject, item.Name, item.Email, item.Body,
	)

	var auth smtp.Auth
	if len(v.Username) > 0 {
		auth = smtp.PlainAuth("", v.Username, v.Password, host)
	}

	return smtp.SendMail(v.Addr, auth, v.From, []string{v.To}, []byte(payload))
}
