package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"team-fit/internal/domain"
	"team-fit/internal/genome"
	"team-fit/internal/repository"
	"team-fit/internal/service"
)

// TeamHandler mantiene dependencias para endpoints de rosters guardados.
type TeamHandler struct {
	logger   *zap.Logger
	teams    repository.TeamRepository
	analysis *service.AnalysisService
}

func NewTeamHandler(logger *zap.Logger, teams repository.TeamRepository, analysis *service.AnalysisService) *TeamHandler {
	return &TeamHandler{logger: logger, teams: teams, analysis: analysis}
}

// CreateTeam maneja POST /api/teams.
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req struct {
		Name    string   `json:"name" binding:"required"`
		Members []string `json:"members" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create team request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	team := domain.Team{
		ID:        uuid.New(),
		Name:      req.Name,
		Members:   req.Members,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.teams.Create(c.Request.Context(), team); err != nil {
		h.logger.Error("create team failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create team"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"team": team})
}

// ListTeams maneja GET /api/teams.
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teams.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list teams failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list teams"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// GetTeam maneja GET /api/teams/:id.
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	team, err := h.teams.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
			return
		}
		h.logger.Error("get team failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team})
}

// DeleteTeam maneja DELETE /api/teams/:id.
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	if err := h.teams.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
			return
		}
		h.logger.Error("delete team failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete team"})
		return
	}

	c.Status(http.StatusNoContent)
}

// AnalyzeCandidate maneja POST /api/teams/:id/analysis: corre el pipeline de
// un candidato contra un roster guardado.
func (h *TeamHandler) AnalyzeCandidate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	var req struct {
		Candidate string `json:"candidate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	team, err := h.teams.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
			return
		}
		h.logger.Error("get team failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch team"})
		return
	}

	result, err := h.analysis.AnalyzeUsernames(c.Request.Context(), team.Members, req.Candidate)
	if err != nil {
		if errors.Is(err, genome.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "candidate profile not found"})
			return
		}
		h.logger.Error("team analysis failed", zap.String("candidate", req.Candidate), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch candidate profile"})
		return
	}

	c.JSON(http.StatusOK, result)
}
