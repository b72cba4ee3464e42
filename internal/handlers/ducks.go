package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"duckstore_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	duckCatalogKey = "ducks:catalog"
	duckCacheTTL   = 5 * time.Minute
)

// DuckLister fournit le catalogue des canards de base (MinIO en prod).
type DuckLister interface {
	List(ctx context.Context) ([]models.Duck, error)
}

// DuckCache garde le catalogue au chaud (Redis en prod).
type DuckCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

// DuckHandler sert le catalogue des canards de base (page Exhibit).
type DuckHandler struct {
	lister DuckLister
	cache  DuckCache
}

func NewDuckHandler(lister DuckLister, cache DuckCache) *DuckHandler {
	return &DuckHandler{lister: lister, cache: cache}
}

// ListDucks liste les modèles du bucket catalogue, avec cache.
func (h *DuckHandler) ListDucks(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Essayer le cache
	if data, ok := h.cache.Get(ctx, duckCatalogKey); ok {
		var ducks []models.Duck
		if json.Unmarshal([]byte(data), &ducks) == nil {
			c.JSON(http.StatusOK, gin.H{"ducks": ducks})
			return
		}
	}

	// 2. Lister le bucket
	ducks, err := h.lister.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catalogue", "details": err.Error()})
		return
	}

	// 3. Mettre en cache
	if data, err := json.Marshal(ducks); err == nil {
		h.cache.Set(ctx, duckCatalogKey, string(data), duckCacheTTL)
	}

	c.JSON(http.StatusOK, gin.H{"ducks": ducks})
}
