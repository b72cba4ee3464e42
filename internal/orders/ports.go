package orders

import (
	"context"

	"duckstore_back_end/internal/models"
)

// Interfaces des services externes du pipeline de commande.
// Les implémentations réelles vivent dans internal/services et
// internal/database ; les tests branchent des fakes.

// CheckoutClient crée une session de paiement hébergée chez Stripe.
type CheckoutClient interface {
	CreateSession(ctx context.Context, email string) (string, error)
}

// ObjectStore stocke le modèle 3D et retourne son URL publique.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// OrderRepo écrit et relit les lignes de commande.
type OrderRepo interface {
	Insert(ctx context.Context, o *models.Order) error
	GetBySession(ctx context.Context, sessionID string) (*models.Order, error)
}

// Mailer envoie l'e-mail de confirmation au client.
type Mailer interface {
	SendOrderConfirmation(to, sessionID, description string) error
}

// OrderIndexer pousse la commande dans l'index de recherche admin.
type OrderIndexer interface {
	Index(ctx context.Context, o *models.Order) error
}
