package orders

import (
	"context"
	"fmt"
	"log"
)

// SubmitInput est ce que le client fournit pour passer commande.
type SubmitInput struct {
	Email       string
	AssetRef    string
	Description string
}

// Pipeline enchaîne création de session → sauvegarde → notification.
// Dès que la session de paiement existe, le client récupère son sessionId :
// la redirection vers la page de paiement ne doit jamais attendre le reste.
// Les étapes 2 et 3 qui échouent sont loggées, pas remontées — c'est le
// compromis assumé du système (réconciliation hors-bande, pas de rollback).
type Pipeline struct {
	checkout  CheckoutClient
	persister *Persister
	notifier  *Notifier
}

func NewPipeline(checkout CheckoutClient, persister *Persister, notifier *Notifier) *Pipeline {
	return &Pipeline{checkout: checkout, persister: persister, notifier: notifier}
}

// Submit retourne le sessionId dès que l'étape 1 réussit, quoi qu'il arrive
// ensuite. Séquentiel, sans retry ni timeout propre : chaque appel externe
// garde les timeouts de son client.
func (p *Pipeline) Submit(ctx context.Context, in SubmitInput) (string, error) {
	sessionID, err := p.checkout.CreateSession(ctx, in.Email)
	if err != nil {
		return "", fmt.Errorf("création de la session de paiement échouée: %w", err)
	}
	log.Printf("💳 Session de paiement créée: %s pour %s", sessionID, in.Email)

	if _, err := p.persister.Persist(ctx, PersistInput{
		Email:       in.Email,
		AssetRef:    in.AssetRef,
		SessionID:   sessionID,
		Description: in.Description,
	}); err != nil {
		// La session existe déjà côté Stripe : on laisse le client payer
		// et on garde une trace pour la réconciliation. Pas d'e-mail de
		// confirmation : le modèle n'est pas stocké, la ligne n'existe pas
		log.Printf("❌ Sauvegarde de la commande %s échouée (le client continue): %v", sessionID, err)
		return sessionID, nil
	}

	if p.notifier != nil {
		p.notifier.Notify(in.Email, sessionID, in.Description)
	}

	return sessionID, nil
}
