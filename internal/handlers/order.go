package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"duckstore_back_end/internal/orders"

	"github.com/gin-gonic/gin"
)

// OrderHandler expose la sauvegarde et la relecture des commandes.
type OrderHandler struct {
	persister *orders.Persister
	repo      orders.OrderRepo
}

func NewOrderHandler(persister *orders.Persister, repo orders.OrderRepo) *OrderHandler {
	return &OrderHandler{persister: persister, repo: repo}
}

type saveOrderRequest struct {
	Email       string `json:"email"`
	AssetRef    string `json:"assetRef"`
	SessionID   string `json:"sessionId"`
	Description string `json:"description"`
}

// SaveOrder sauvegarde une commande : upload du modèle puis ligne en base.
// Invocable seul (rejeu manuel après incident) ou via le pipeline.
func (h *OrderHandler) SaveOrder(c *gin.Context) {
	var req saveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("⚠️ Corps de requête illisible, traité comme vide: %v", err)
		req = saveOrderRequest{}
	}

	result, err := h.persister.Persist(c.Request.Context(), orders.PersistInput{
		Email:       req.Email,
		AssetRef:    req.AssetRef,
		SessionID:   req.SessionID,
		Description: req.Description,
	})
	if err != nil {
		var missing *orders.MissingFieldsError
		if errors.As(err, &missing) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Missing required fields",
				"details": strings.Join(missing.Fields, ", "),
			})
			return
		}
		var invalid *orders.InvalidAssetError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid asset encoding",
				"details": invalid.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to save order",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order saved successfully",
		"assetUrl": result.AssetURL,
	})
}

// GetOrder retourne la dernière ligne de commande d'une session
// (page de succès après retour de Stripe).
func (h *OrderHandler) GetOrder(c *gin.Context) {
	sessionID := c.Param("sessionId")

	order, err := h.repo.GetBySession(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	c.JSON(http.StatusOK, order)
}
