package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// OrderSearcher interroge l'index de recherche des commandes
// (Elasticsearch en prod).
type OrderSearcher interface {
	Search(ctx context.Context, query string) ([]map[string]interface{}, error)
}

// SearchHandler expose la recherche de commandes pour le back-office.
type SearchHandler struct {
	index OrderSearcher
}

func NewSearchHandler(index OrderSearcher) *SearchHandler {
	return &SearchHandler{index: index}
}

// SearchOrders cherche par e-mail client, description ou session.
func (h *SearchHandler) SearchOrders(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre q requis"})
		return
	}

	results, err := h.index.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": results, "count": len(results)})
}
