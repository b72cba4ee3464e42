package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load charge le fichier .env (optionnel en production)
func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// Config regroupe toute la configuration du serveur.
// Chaque composant reçoit sa section à la construction au lieu de lire
// os.Getenv dans tous les coins — ça permet de brancher des fakes en test.
type Config struct {
	Port    string
	BaseURL string

	StripeSecretKey string
	JWTSecret       string

	Scylla  ScyllaConfig
	MinIO   MinIOConfig
	Redis   RedisConfig
	Elastic ElasticConfig
	SMTP    SMTPConfig
}

type ScyllaConfig struct {
	Hosts    []string
	Keyspace string
	Username string
	Password string
}

type MinIOConfig struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UseSSL       bool
	OrdersBucket string // modèles 3D commandés
	DucksBucket  string // catalogue des canards de base
}

type RedisConfig struct {
	Addr     string
	Password string
}

type ElasticConfig struct {
	URL      string
	Username string
	Password string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// FromEnv construit la configuration depuis l'environnement.
func FromEnv() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:5173"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		Scylla: ScyllaConfig{
			Hosts:    strings.Split(getEnv("SCYLLA_HOSTS", "127.0.0.1"), ","),
			Keyspace: getEnv("SCYLLA_KS_ORDERS_KEYSPACE", "duckstore_orders"),
			Username: os.Getenv("SCYLLA_KS_ORDERS_ROLE"),
			Password: os.Getenv("SCYLLA_KS_ORDERS_PASSWORD"),
		},
		MinIO: MinIOConfig{
			Endpoint:     getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey:    os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey:    os.Getenv("MINIO_SECRET_KEY"),
			UseSSL:       os.Getenv("MINIO_USE_SSL") == "true",
			OrdersBucket: getEnv("MINIO_ORDERS_BUCKET", "duck-orders"),
			DucksBucket:  getEnv("MINIO_DUCKS_BUCKET", "duck-models"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Elastic: ElasticConfig{
			URL:      getEnv("ELASTIC_URL", "http://localhost:9200"),
			Username: os.Getenv("ELASTIC_USER"),
			Password: os.Getenv("ELASTIC_PASSWORD"),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("SMTP_FROM", "noreply@duckstore.app"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
