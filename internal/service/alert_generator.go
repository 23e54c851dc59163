package service

import (
	"fmt"
	"math"
	"strings"

	"team-fit/internal/domain"
)

// AlertGenerator convierte un DeltaAnalysis en alertas listas para mostrar:
// advertencias de redundancia agrupadas y, como mucho, una recomendacion
// combinada de contratacion. Pura y determinista.
type AlertGenerator struct{}

// Generate agrupa las habilidades redundantes por (nombre en minusculas,
// nivel del candidato) para no mezclar la misma habilidad declarada a
// distintos niveles, y produce una alerta por grupo. La alerta de aporte se
// emite solo si hay habilidades o idiomas que aporten valor.
func (AlertGenerator) Generate(delta domain.DeltaAnalysis) domain.AlertSet {
	set := domain.AlertSet{RedundancyAlerts: []domain.RedundancyAlert{}}

	groupIndex := make(map[string]int)
	groups := [][]domain.SkillDelta{}
	for _, skill := range delta.RedundantSkills {
		key := strings.ToLower(skill.SkillName) + "|" + skill.CandidateProficiency
		if i, ok := groupIndex[key]; ok {
			groups[i] = append(groups[i], skill)
			continue
		}
		groupIndex[key] = len(groups)
		groups = append(groups, []domain.SkillDelta{skill})
	}

	for _, group := range groups {
		set.RedundancyAlerts = append(set.RedundancyAlerts, buildRedundancyAlert(group, delta.Summary.TotalTeamMembers))
	}

	if alert := buildValueAddAlert(delta); alert != nil {
		set.ValueAddAlert = alert
	}

	return set
}

// buildRedundancyAlert arma la alerta de un grupo. Cuando nadie en el equipo
// tiene la habilidad al nivel exacto del candidato, el mensaje cae al
// porcentaje de cobertura crudo pero Count sigue siendo
// round(cobertura*miembros); esa asimetria replica el comportamiento
// historico del producto.
func buildRedundancyAlert(group []domain.SkillDelta, totalMembers int) domain.RedundancyAlert {
	first := group[0]

	exactPercentage := first.TeamProficiencyDistribution[first.CandidateProficiency]
	exactCount := int(math.Round(exactPercentage / 100 * float64(totalMembers)))

	var message string
	count := exactCount
	if exactCount > 0 {
		member := "member"
		if exactCount > 1 {
			member = "members"
		}
		message = fmt.Sprintf("Warning: You already have %d team %s with %s at %s proficiency level.",
			exactCount, member, first.SkillName, domain.ProficiencyLabel(first.CandidateProficiency))
	} else {
		coveragePercent := int(math.Round(first.TeamCoverage * 100))
		message = fmt.Sprintf("Warning: %d%% of your team already has %s.", coveragePercent, first.SkillName)
		count = int(math.Round(first.TeamCoverage * float64(totalMembers)))
	}

	return domain.RedundancyAlert{
		Severity: severityFor(first.TeamCoverage),
		Message:  message,
		Skills:   group,
		Count:    count,
	}
}

func severityFor(coverage float64) domain.Severity {
	switch {
	case coverage >= SeverityHighCoverage:
		return domain.SeverityHigh
	case coverage >= SeverityMediumCoverage:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

func buildValueAddAlert(delta domain.DeltaAnalysis) *domain.ValueAddAlert {
	if len(delta.ValueAddSkills) == 0 && len(delta.ValueAddLanguages) == 0 {
		return nil
	}

	// ValueAddSkills ya viene ordenado de lo mas raro a lo mas cubierto, asi
	// que truncar se queda con lo mas valioso.
	topSkills := delta.ValueAddSkills
	if len(topSkills) > ValueAddSkillLimit {
		topSkills = topSkills[:ValueAddSkillLimit]
	}

	var builder strings.Builder
	builder.WriteString("Strong Hire: ")

	skillNames := []string{}
	for i, skill := range topSkills {
		if i == ValueAddMessageNameLimit {
			break
		}
		skillNames = append(skillNames, `"`+skill.SkillName+`"`)
	}
	if len(skillNames) > 0 {
		builder.WriteString(joinWithAnd(skillNames))
		if extra := len(delta.ValueAddSkills) - ValueAddMessageNameLimit; extra > 0 {
			builder.WriteString(fmt.Sprintf(" and %d more", extra))
		}
	}

	languageNames := []string{}
	for _, language := range delta.ValueAddLanguages {
		languageNames = append(languageNames, language.LanguageName)
	}
	if len(languageNames) > 0 {
		if len(skillNames) > 0 {
			builder.WriteString(" and ")
		}
		builder.WriteString(joinWithAnd(languageNames))
	}

	if len(skillNames) > 0 || len(languageNames) > 0 {
		if anyUncovered(topSkills) {
			builder.WriteString("—skills your current team completely lacks.")
		} else {
			builder.WriteString("—skills your current team has limited coverage in.")
		}
	}

	return &domain.ValueAddAlert{
		Message:   builder.String(),
		Skills:    topSkills,
		Languages: delta.ValueAddLanguages,
	}
}

// joinWithAnd une nombres al estilo `A, B and C`.
func joinWithAnd(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

func anyUncovered(skills []domain.SkillDelta) bool {
	for _, skill := range skills {
		if skill.TeamCoverage == 0 {
			return true
		}
	}
	return false
}
