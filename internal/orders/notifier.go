package orders

import "log"

// Notifier envoie la confirmation de commande au client.
// Tout échec est loggé puis avalé : le paiement et la sauvegarde sont
// critiques, l'e-mail ne l'est pas.
type Notifier struct {
	mailer Mailer
}

func NewNotifier(mailer Mailer) *Notifier {
	return &Notifier{mailer: mailer}
}

func (n *Notifier) Notify(email, sessionID, description string) {
	if n.mailer == nil {
		return
	}
	if err := n.mailer.SendOrderConfirmation(email, sessionID, description); err != nil {
		log.Printf("⚠️ Envoi e-mail de confirmation échoué pour %s: %v", sessionID, err)
		return
	}
	log.Println("📧 E-mail de confirmation envoyé à", email)
}
