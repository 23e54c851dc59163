package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"team-fit/internal/domain"
	"team-fit/internal/genome"
	"team-fit/internal/service"
)

// AnalysisHandler expone el pipeline de analisis por HTTP.
type AnalysisHandler struct {
	logger   *zap.Logger
	analysis *service.AnalysisService
}

func NewAnalysisHandler(logger *zap.Logger, analysis *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{logger: logger, analysis: analysis}
}

// Analyze maneja POST /api/analysis: recibe usernames, recupera los perfiles
// y devuelve agregado, delta y alertas.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	// Team puede venir vacio: agregar cero perfiles es valido.
	var req struct {
		Team      []string `json:"team"`
		Candidate string   `json:"candidate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analysis request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.analysis.AnalyzeUsernames(c.Request.Context(), req.Team, req.Candidate)
	if err != nil {
		if errors.Is(err, genome.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "candidate profile not found"})
			return
		}
		h.logger.Error("analysis failed", zap.String("candidate", req.Candidate), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch candidate profile"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzeRaw maneja POST /api/analysis/raw: perfiles ya parseados en el
// cuerpo, sin tocar el upstream. El pipeline es total, asi que el unico
// error posible es un JSON invalido.
func (h *AnalysisHandler) AnalyzeRaw(c *gin.Context) {
	var req struct {
		TeamProfiles     []domain.Profile `json:"teamProfiles"`
		CandidateProfile domain.Profile   `json:"candidateProfile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid raw analysis request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.JSON(http.StatusOK, h.analysis.AnalyzeProfiles(req.TeamProfiles, req.CandidateProfile))
}
