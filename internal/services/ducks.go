package services

import (
	"context"
	"strings"

	"duckstore_back_end/internal/config"
	"duckstore_back_end/internal/models"

	"github.com/minio/minio-go/v7"
)

// DuckCatalog liste les modèles de base depuis le bucket catalogue.
type DuckCatalog struct {
	client *minio.Client
	cfg    config.MinIOConfig
}

func NewDuckCatalog(client *minio.Client, cfg config.MinIOConfig) *DuckCatalog {
	return &DuckCatalog{client: client, cfg: cfg}
}

func (d *DuckCatalog) List(ctx context.Context) ([]models.Duck, error) {
	ducks := []models.Duck{}
	for obj := range d.client.ListObjects(ctx, d.cfg.DucksBucket, minio.ListObjectsOptions{}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if !strings.HasSuffix(obj.Key, ".glb") && !strings.HasSuffix(obj.Key, ".gltf") {
			continue
		}
		name := strings.TrimSuffix(strings.TrimSuffix(obj.Key, ".glb"), ".gltf")
		ducks = append(ducks, models.Duck{
			Name: strings.ReplaceAll(name, "_", " "),
			URL:  PublicURL(d.cfg, d.cfg.DucksBucket, obj.Key),
		})
	}
	return ducks, nil
}
