package main

import (
	"log"

	"duckstore_back_end/internal/cache"
	"duckstore_back_end/internal/config"
	"duckstore_back_end/internal/database"
	"duckstore_back_end/internal/handlers"
	"duckstore_back_end/internal/handlers/admin"
	"duckstore_back_end/internal/handlers/payement"
	"duckstore_back_end/internal/orders"
	"duckstore_back_end/internal/routes"
	"duckstore_back_end/internal/services"
	"duckstore_back_end/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
)

func main() {
	config.Load()
	cfg := config.FromEnv()

	stripe.Key = cfg.StripeSecretKey
	if stripe.Key == "" {
		log.Fatal("❌ Impossible d'initialiser Stripe : clé manquante")
	}
	log.Println("✅ Stripe initialisé")

	conns, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ Échec connexion bases de données: %v", err)
	}
	defer conns.Close()

	// Assemblage du pipeline de commande
	repo := database.NewScyllaOrderRepo(conns.Scylla)
	store := services.NewAssetStore(conns.MinIO, cfg.MinIO)
	index := services.NewOrderIndex(conns.Elastic, "orders")
	checkout := services.NewStripeCheckout(cfg.BaseURL)
	notifier := orders.NewNotifier(utils.NewMailer(cfg.SMTP))
	persister := orders.NewPersister(store, repo, index)
	pipeline := orders.NewPipeline(checkout, persister, notifier)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.BaseURL},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r, &routes.Deps{
		Checkout:  payement.NewCheckoutHandler(pipeline),
		Orders:    handlers.NewOrderHandler(persister, repo),
		Ducks:     handlers.NewDuckHandler(services.NewDuckCatalog(conns.MinIO, cfg.MinIO), cache.NewRedisCache(conns.Redis)),
		Admin:     admin.NewSearchHandler(index),
		JWTSecret: []byte(cfg.JWTSecret),
	})

	log.Println("🚀 Serveur DuckStore lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Serveur arrêté: %v", err)
	}
}
