package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Statuts de commande — alignés sur le board de suivi des commandes.
const (
	StatusNotStarted = "Not started"
	StatusInProgress = "In progress"
	StatusShipped    = "Shipped"
)

// Order relie un client, un modèle 3D stocké et une session de paiement.
// Une ligne par tentative de sauvegarde : order_id est un timeuuid, donc
// deux appels avec le même session_id donnent bien deux lignes distinctes.
type Order struct {
	SessionID     string     `json:"session_id"`
	OrderID       gocql.UUID `json:"order_id"`
	CustomerEmail string     `json:"customer_email"`
	ModelURL      string     `json:"model_url"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	OrderDate     time.Time  `json:"order_date"`
}

// Duck est une entrée du catalogue des modèles de base.
type Duck struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
