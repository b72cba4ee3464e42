package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"duckstore_back_end/internal/config"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gocql/gocql"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
)

// Connections porte tous les clients externes. Construit une fois au
// démarrage et injecté dans les composants — pas de globals.
type Connections struct {
	Scylla  *gocql.Session
	Redis   *redis.Client
	Elastic *elasticsearch.Client
	MinIO   *minio.Client
}

// Connect initialise ScyllaDB, Redis, Elasticsearch et MinIO.
func Connect(cfg config.Config) (*Connections, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	scylla, err := connectScylla(cfg.Scylla)
	if err != nil {
		return nil, fmt.Errorf("échec initialisation ScyllaDB: %w", err)
	}

	rdb, err := connectRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	es, err := connectElastic(cfg.Elastic)
	if err != nil {
		return nil, err
	}

	mc, err := connectMinIO(ctx, cfg.MinIO)
	if err != nil {
		return nil, err
	}

	log.Println("✅ Toutes les bases de données sont connectées")
	return &Connections{Scylla: scylla, Redis: rdb, Elastic: es, MinIO: mc}, nil
}

// Close ferme proprement ce qui doit l'être.
func (c *Connections) Close() {
	if c.Scylla != nil {
		c.Scylla.Close()
		log.Println("🔌 Session ScyllaDB fermée")
	}
	if c.Redis != nil {
		c.Redis.Close()
	}
}

// =============================================
// SCYLLA DB (keyspace commandes)
// =============================================

func connectScylla(cfg config.ScyllaConfig) (*gocql.Session, error) {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Keyspace = cfg.Keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 5 * time.Second
	cluster.NumConns = 10
	cluster.ReconnectInterval = 1 * time.Second

	if cfg.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}

	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())

	// Note: la table orders est créée via scripts/scylladb_init.cql,
	// pas d'initialisation automatique (problèmes de permissions)
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("erreur création session pour %s: %v", cfg.Keyspace, err)
	}

	log.Printf("✅ Session ScyllaDB pour keyspace '%s' (utilisateur: %s)", cfg.Keyspace, cfg.Username)
	return session, nil
}

// =============================================
// REDIS
// =============================================

func connectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("erreur connexion Redis: %w", err)
	}
	log.Println("✅ Connecté à Redis")
	return rdb, nil
}

// =============================================
// ELASTICSEARCH
// =============================================

func connectElastic(cfg config.ElasticConfig) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("erreur création client Elasticsearch: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("erreur connexion Elasticsearch: %w", err)
	}
	defer res.Body.Close()

	log.Println("✅ Connecté à Elasticsearch")
	return client, nil
}

// =============================================
// MINIO
// =============================================

func connectMinIO(ctx context.Context, cfg config.MinIOConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("erreur connexion MinIO: %w", err)
	}

	// Les deux buckets doivent exister, et celui des commandes doit être
	// lisible publiquement : les URLs de modèles partent telles quelles
	// dans les lignes de commande et les e-mails
	for _, bucket := range []string{cfg.OrdersBucket, cfg.DucksBucket} {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("erreur vérification bucket MinIO: %w", err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				return nil, fmt.Errorf("erreur création bucket MinIO: %w", err)
			}
			log.Println("🪣 Bucket créé :", bucket)
		} else {
			log.Println("🪣 Bucket MinIO déjà présent :", bucket)
		}

		policy := fmt.Sprintf(`{
			"Version": "2012-10-17",
			"Statement": [{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}]
		}`, bucket)
		if err := client.SetBucketPolicy(ctx, bucket, policy); err != nil {
			log.Printf("⚠️ Policy publique non appliquée sur %s: %v", bucket, err)
		}
	}

	log.Println("✅ Connecté à MinIO :", cfg.Endpoint)
	return client, nil
}
