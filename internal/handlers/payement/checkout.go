package payement

import (
	"log"
	"net/http"

	"duckstore_back_end/internal/orders"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler expose la création de session de paiement, qui déclenche
// le pipeline complet (session → sauvegarde → e-mail).
type CheckoutHandler struct {
	pipeline *orders.Pipeline
}

func NewCheckoutHandler(pipeline *orders.Pipeline) *CheckoutHandler {
	return &CheckoutHandler{pipeline: pipeline}
}

type checkoutRequest struct {
	Email       string `json:"email"`
	AssetRef    string `json:"assetRef"`
	Description string `json:"description"`
}

// CreateCheckoutSession crée la session Stripe et lance le reste du
// pipeline. Dès que la session existe, on répond {sessionId} — la
// redirection paiement ne doit jamais attendre la sauvegarde ni l'e-mail.
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var req checkoutRequest
	// Corps illisible = objet vide : la validation des champs fera son
	// travail plus loin (comportement historique du front, on le garde)
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("⚠️ Corps de requête illisible, traité comme vide: %v", err)
		req = checkoutRequest{}
	}

	sessionID, err := h.pipeline.Submit(c.Request.Context(), orders.SubmitInput{
		Email:       req.Email,
		AssetRef:    req.AssetRef,
		Description: req.Description,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create checkout session",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID})
}
