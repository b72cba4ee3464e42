package utils

import (
	"fmt"

	"duckstore_back_end/internal/config"

	"github.com/wneessen/go-mail"
)

// Mailer envoie les e-mails transactionnels via le relais SMTP.
type Mailer struct {
	cfg config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendOrderConfirmation envoie la confirmation de commande : corps texte
// simple + alternative HTML, avec le numéro de session et la description.
func (m *Mailer) SendOrderConfirmation(to, sessionID, description string) error {
	msg := mail.NewMsg()

	if err := msg.From(m.cfg.From); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("🦆 Confirmation de votre commande DuckStore")

	plain := fmt.Sprintf(
		"Merci pour votre commande !\n\nCanard : %s\nRéférence : %s\n\nVotre modèle 3D est en préparation.\nL'équipe DuckStore",
		description, sessionID)
	msg.SetBodyString(mail.TypeTextPlain, plain)
	msg.AddAlternativeString(mail.TypeTextHTML, GenerateOrderConfirmationHTML(sessionID, description))

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	return client.DialAndSend(msg)
}
