package orders

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"duckstore_back_end/internal/assets"
	"duckstore_back_end/internal/models"

	"github.com/gocql/gocql"
)

// MissingFieldsError liste les champs obligatoires absents de la requête.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "champs obligatoires manquants: " + strings.Join(e.Fields, ", ")
}

// InvalidAssetError signale un encodage de modèle 3D illisible.
type InvalidAssetError struct {
	Cause error
}

func (e *InvalidAssetError) Error() string {
	return "modèle 3D illisible: " + e.Cause.Error()
}

func (e *InvalidAssetError) Unwrap() error { return e.Cause }

// PersistInput est l'entrée de sauvegarde d'une commande.
// AssetRef est la forme transportable du modèle (base64 ou data-URI).
type PersistInput struct {
	Email       string
	AssetRef    string
	SessionID   string
	Description string
}

// PersistResult est retourné après une sauvegarde complète.
type PersistResult struct {
	AssetURL string
	Order    *models.Order
}

// Persister sauvegarde une commande : décodage du modèle, upload vers le
// stockage objet, puis insertion de la ligne de commande. L'indexation de
// recherche est en bonus — son échec ne casse jamais la sauvegarde.
type Persister struct {
	store   ObjectStore
	repo    OrderRepo
	indexer OrderIndexer
}

func NewPersister(store ObjectStore, repo OrderRepo, indexer OrderIndexer) *Persister {
	return &Persister{store: store, repo: repo, indexer: indexer}
}

// Persist exécute les étapes dans l'ordre. La validation passe AVANT tout
// appel externe. Un upload raté stoppe tout avant l'écriture en base ; une
// écriture ratée après upload laisse un objet orphelin (assumé, loggé).
// Pas idempotent : rejouer le même session_id réécrit l'objet (même clé)
// mais insère une deuxième ligne — la déduplication n'est pas son problème.
func (p *Persister) Persist(ctx context.Context, in PersistInput) (*PersistResult, error) {
	var missing []string
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.AssetRef == "" {
		missing = append(missing, "assetRef")
	}
	if in.SessionID == "" {
		missing = append(missing, "sessionId")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	data, err := assets.Decode(in.AssetRef)
	if err != nil {
		return nil, &InvalidAssetError{Cause: err}
	}

	key := in.SessionID + assets.ExtensionForContentType(assets.ContentTypeGLB)
	url, err := p.store.Put(ctx, key, data, assets.ContentTypeGLB)
	if err != nil {
		return nil, fmt.Errorf("upload du modèle échoué: %w", err)
	}

	order := &models.Order{
		SessionID:     in.SessionID,
		OrderID:       gocql.TimeUUID(),
		CustomerEmail: in.Email,
		ModelURL:      url,
		Description:   in.Description,
		Status:        models.StatusNotStarted,
		OrderDate:     time.Now().UTC(),
	}

	if err := p.repo.Insert(ctx, order); err != nil {
		// L'objet vient d'être uploadé : on le signale pour la réconciliation manuelle
		log.Printf("❌ Écriture commande échouée (objet orphelin %s): %v", key, err)
		return nil, fmt.Errorf("écriture de la commande échouée: %w", err)
	}

	if p.indexer != nil {
		if err := p.indexer.Index(ctx, order); err != nil {
			log.Printf("⚠️ Indexation recherche échouée pour %s: %v", in.SessionID, err)
		}
	}

	log.Printf("✅ Commande sauvegardée: %s → %s", in.SessionID, url)
	return &PersistResult{AssetURL: url, Order: order}, nil
}
