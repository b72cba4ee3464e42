package database

import (
	"context"

	"duckstore_back_end/internal/models"

	"github.com/gocql/gocql"
)

// ScyllaOrderRepo écrit les lignes de commande dans le keyspace orders.
// Clé primaire (session_id, order_id timeuuid) : un INSERT rejoué avec le
// même session_id crée bien une deuxième ligne au lieu d'écraser la première.
type ScyllaOrderRepo struct {
	session *gocql.Session
}

func NewScyllaOrderRepo(session *gocql.Session) *ScyllaOrderRepo {
	return &ScyllaOrderRepo{session: session}
}

func (r *ScyllaOrderRepo) Insert(ctx context.Context, o *models.Order) error {
	return r.session.Query(`INSERT INTO orders
		(session_id, order_id, customer_email, model_url, description, status, order_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.SessionID, o.OrderID, o.CustomerEmail, o.ModelURL,
		o.Description, o.Status, o.OrderDate,
	).WithContext(ctx).Exec()
}

// GetBySession retourne la ligne la plus récente pour une session
// (order_id en ordre décroissant dans la table).
func (r *ScyllaOrderRepo) GetBySession(ctx context.Context, sessionID string) (*models.Order, error) {
	var o models.Order
	err := r.session.Query(`SELECT session_id, order_id, customer_email, model_url, description, status, order_date
		FROM orders WHERE session_id = ? LIMIT 1`, sessionID).
		WithContext(ctx).
		Scan(&o.SessionID, &o.OrderID, &o.CustomerEmail, &o.ModelURL,
			&o.Description, &o.Status, &o.OrderDate)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
