package services

import (
	"bytes"
	"context"
	"fmt"

	"duckstore_back_end/internal/config"

	"github.com/minio/minio-go/v7"
)

// Les modèles sont immuables une fois uploadés : cache long et agressif.
const assetCacheControl = "public, max-age=31536000, immutable"

// AssetStore pousse les modèles 3D dans le bucket des commandes.
// Le bucket est en lecture publique (policy posée à la connexion), donc
// l'URL retournée est directement servable au front et au board de suivi.
type AssetStore struct {
	client *minio.Client
	cfg    config.MinIOConfig
}

func NewAssetStore(client *minio.Client, cfg config.MinIOConfig) *AssetStore {
	return &AssetStore{client: client, cfg: cfg}
}

// Put uploade sous la clé donnée et retourne l'URL publique.
// Même clé = objet réécrit, c'est voulu (clé dérivée du session_id).
func (s *AssetStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.cfg.OrdersBucket, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType:  contentType,
			CacheControl: assetCacheControl,
		})
	if err != nil {
		return "", err
	}

	return PublicURL(s.cfg, s.cfg.OrdersBucket, key), nil
}

// PublicURL construit l'URL publique d'un objet MinIO.
func PublicURL(cfg config.MinIOConfig, bucket, key string) string {
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, cfg.Endpoint, bucket, key)
}
