package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"team-fit/internal/genome"
)

// PeopleHandler proxya bios y busqueda de personas del upstream.
type PeopleHandler struct {
	logger  *zap.Logger
	genomes genome.Client
}

func NewPeopleHandler(logger *zap.Logger, genomes genome.Client) *PeopleHandler {
	return &PeopleHandler{logger: logger, genomes: genomes}
}

// GetProfile maneja GET /api/people/:username y devuelve el perfil parseado.
func (h *PeopleHandler) GetProfile(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.genomes.FetchBio(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, genome.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error("fetch bio failed", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// SearchPeople maneja POST /api/search/people y reenvia la busqueda.
func (h *PeopleHandler) SearchPeople(c *gin.Context) {
	var query genome.SearchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	results, err := h.genomes.SearchPeople(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("search people failed", zap.String("term", query.Term), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not search people"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
