package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"duckstore_back_end/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

//
// --- INDEXATION DES COMMANDES DANS ELASTICSEARCH ---
//

// OrderIndex pousse chaque commande sauvegardée dans l'index de recherche.
// C'est du bonus pour le dashboard admin : un échec ici ne doit jamais
// faire échouer la sauvegarde (le pipeline loggue et continue).
type OrderIndex struct {
	client *elasticsearch.Client
	index  string
}

func NewOrderIndex(client *elasticsearch.Client, index string) *OrderIndex {
	return &OrderIndex{client: client, index: index}
}

func (oi *OrderIndex) Index(ctx context.Context, o *models.Order) error {
	if oi.client == nil {
		return errors.New("client Elasticsearch non initialisé")
	}

	data, err := json.Marshal(o)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      oi.index,
		DocumentID: o.OrderID.String(),
		Body:       bytes.NewReader(data),
	}

	res, err := req.Do(ctx, oi.client)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elastic a renvoyé une erreur pour %s: %s", o.SessionID, res.String())
	}
	return nil
}

//
// --- RECHERCHE DANS ELASTICSEARCH ---
//

// Search cherche des commandes par e-mail, description ou session.
func (oi *OrderIndex) Search(ctx context.Context, query string) ([]map[string]interface{}, error) {
	if oi.client == nil {
		return nil, errors.New("client Elasticsearch non initialisé")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"customer_email", "description", "session_id"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{oi.index},
		Body:  &buf,
	}
	res, err := req.Do(ctx, oi.client)
	if err != nil {
		return nil, fmt.Errorf("erreur requête Elastic: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		json.NewDecoder(res.Body).Decode(&e)
		log.Printf("❌ Elasticsearch erreur: %+v", e)
		return nil, errors.New("index non trouvé ou vide")
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erreur décodage JSON: %v", err)
	}

	hitsData, ok := r["hits"].(map[string]interface{})
	if !ok {
		return nil, errors.New("réponse Elastic invalide (pas de hits)")
	}
	hitsArray, ok := hitsData["hits"].([]interface{})
	if !ok {
		return nil, errors.New("aucun résultat trouvé")
	}

	results := make([]map[string]interface{}, 0, len(hitsArray))
	for _, hit := range hitsArray {
		hitMap, _ := hit.(map[string]interface{})
		if source, ok := hitMap["_source"].(map[string]interface{}); ok {
			results = append(results, source)
		}
	}

	return results, nil
}
