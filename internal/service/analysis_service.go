package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"team-fit/internal/domain"
	"team-fit/internal/genome"
)

// AnalysisService orquesta la recuperacion de perfiles y el pipeline
// agregado -> delta -> alertas. El pipeline en si es puro; toda la E/S vive
// aca y en el cliente de genomas.
type AnalysisService struct {
	genomes    genome.Client
	cache      ProfileCache
	aggregator Aggregator
	analyzer   DeltaAnalyzer
	alerts     AlertGenerator
	logger     *zap.Logger
}

// AnalysisResult es la respuesta completa que consume la capa de presentacion.
type AnalysisResult struct {
	Team   domain.TeamAggregate `json:"team"`
	Delta  domain.DeltaAnalysis `json:"delta"`
	Alerts domain.AlertSet      `json:"alerts"`
}

func NewAnalysisService(genomes genome.Client, cache ProfileCache, logger *zap.Logger) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{
		genomes: genomes,
		cache:   cache,
		logger:  logger,
	}
}

// AnalyzeUsernames recupera los perfiles del equipo y del candidato y corre
// el pipeline. Un miembro que no se pueda recuperar se omite con un warning;
// si el que falla es el candidato, el analisis completo falla.
func (s *AnalysisService) AnalyzeUsernames(ctx context.Context, team []string, candidate string) (AnalysisResult, error) {
	profiles := make([]domain.Profile, 0, len(team))
	for _, username := range team {
		profile, err := s.fetchProfile(ctx, username)
		if err != nil {
			s.logger.Warn("team member fetch failed", zap.String("username", username), zap.Error(err))
			continue
		}
		profiles = append(profiles, profile)
	}

	candidateProfile, err := s.fetchProfile(ctx, candidate)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("fetch candidate %s: %w", candidate, err)
	}

	return s.AnalyzeProfiles(profiles, candidateProfile), nil
}

// AnalyzeProfiles corre el pipeline sobre perfiles ya recuperados. Nunca
// falla: perfiles sin habilidades o idiomas simplemente no aportan datos.
func (s *AnalysisService) AnalyzeProfiles(team []domain.Profile, candidate domain.Profile) AnalysisResult {
	aggregate := s.aggregator.Aggregate(team)
	delta := s.analyzer.Analyze(candidate, aggregate)
	return AnalysisResult{
		Team:   aggregate,
		Delta:  delta,
		Alerts: s.alerts.Generate(delta),
	}
}

func (s *AnalysisService) fetchProfile(ctx context.Context, username string) (domain.Profile, error) {
	if s.cache != nil {
		if profile, ok := s.cache.Get(ctx, username); ok {
			return profile, nil
		}
	}

	profile, err := s.genomes.FetchBio(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, username, profile)
	}
	return profile, nil
}
