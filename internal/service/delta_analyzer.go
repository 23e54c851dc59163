package service

import (
	"sort"
	"strings"

	"team-fit/internal/domain"
)

// DeltaAnalyzer clasifica el perfil de un candidato contra el agregado del
// equipo. Pura y determinista: misma entrada, misma salida, incluido el orden.
type DeltaAnalyzer struct{}

// Analyze compara cada habilidad e idioma del candidato con el equipo.
// Las habilidades se emparejan por nombre sin distinguir mayusculas, pero la
// grafia original del candidato se conserva en la salida; los idiomas se
// emparejan por codigo exacto. Cobertura > RedundancyThreshold es redundante,
// < ValueAddThreshold aporta valor; los valores de borde no clasifican en
// ninguna de las dos.
func (DeltaAnalyzer) Analyze(candidate domain.Profile, team domain.TeamAggregate) domain.DeltaAnalysis {
	analysis := domain.DeltaAnalysis{
		RedundantSkills:   []domain.SkillDelta{},
		ValueAddSkills:    []domain.SkillDelta{},
		ValueAddLanguages: []domain.LanguageDelta{},
	}

	teamSkills := make(map[string]domain.SkillFrequency, len(team.Skills))
	for _, frequency := range team.Skills {
		teamSkills[strings.ToLower(frequency.SkillName)] = frequency
	}

	for _, skill := range candidate.Skills {
		frequency, matched := teamSkills[strings.ToLower(skill.Name)]

		coverage := 0.0
		var distribution map[string]float64
		if matched {
			coverage = frequency.Percentage / 100
			if team.TotalMembers > 0 {
				distribution = make(map[string]float64, len(frequency.ProficiencyLevels))
				for level, count := range frequency.ProficiencyLevels {
					distribution[level] = roundPercentage(float64(count) / float64(team.TotalMembers) * 100)
				}
			}
		}

		delta := domain.SkillDelta{
			SkillName:                   skill.Name,
			CandidateProficiency:        levelOrUnknown(skill.Proficiency),
			TeamCoverage:                coverage,
			TeamProficiencyDistribution: distribution,
			IsRedundant:                 coverage > RedundancyThreshold,
			IsValueAdd:                  coverage < ValueAddThreshold,
		}

		switch {
		case delta.IsRedundant:
			analysis.RedundantSkills = append(analysis.RedundantSkills, delta)
		case delta.IsValueAdd:
			analysis.ValueAddSkills = append(analysis.ValueAddSkills, delta)
		}
	}

	// Lo mas redundante primero; lo mas raro primero. Orden estable para que
	// los empates respeten el orden de declaracion del candidato.
	sort.SliceStable(analysis.RedundantSkills, func(i, j int) bool {
		return analysis.RedundantSkills[i].TeamCoverage > analysis.RedundantSkills[j].TeamCoverage
	})
	sort.SliceStable(analysis.ValueAddSkills, func(i, j int) bool {
		return analysis.ValueAddSkills[i].TeamCoverage < analysis.ValueAddSkills[j].TeamCoverage
	})

	for _, language := range candidate.Languages {
		coverage := 0.0
		if frequency, ok := team.Languages[language.Code]; ok {
			coverage = frequency.Percentage / 100
		}
		if coverage < ValueAddThreshold {
			analysis.ValueAddLanguages = append(analysis.ValueAddLanguages, domain.LanguageDelta{
				LanguageCode:     language.Code,
				LanguageName:     language.Name,
				CandidateFluency: levelOrUnknown(language.Fluency),
				TeamCoverage:     coverage,
				IsValueAdd:       true,
			})
		}
	}

	analysis.Summary = domain.DeltaSummary{
		TotalRedundantSkills:   len(analysis.RedundantSkills),
		TotalValueAddSkills:    len(analysis.ValueAddSkills),
		TotalValueAddLanguages: len(analysis.ValueAddLanguages),
		TotalTeamMembers:       team.TotalMembers,
	}

	return analysis
}
