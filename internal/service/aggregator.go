package service

import (
	"math"
	"sort"
	"strings"

	"team-fit/internal/domain"
)

// Aggregator condensa una coleccion de perfiles en estadisticas de frecuencia
// por habilidad y por idioma. Es una funcion pura: nunca falla y las listas
// ausentes o vacias de un perfil simplemente no suman.
type Aggregator struct{}

type skillAccumulator struct {
	displayName string
	count       int
	levels      map[string]int
}

type languageAccumulator struct {
	displayName string
	count       int
	levels      map[string]int
}

// Aggregate recorre todos los perfiles y materializa el TeamAggregate.
// Las habilidades se agrupan por nombre normalizado en minusculas y conservan
// la grafia con que se vieron por primera vez; los idiomas se agrupan por
// codigo exacto. La lista final de habilidades queda ordenada por Count
// descendente con orden estable: los empates respetan el orden de aparicion,
// del que depende la seleccion de "top N" aguas abajo.
func (Aggregator) Aggregate(profiles []domain.Profile) domain.TeamAggregate {
	aggregate := domain.TeamAggregate{
		Skills:    []domain.SkillFrequency{},
		Languages: map[string]domain.LanguageFrequency{},
	}
	if len(profiles) == 0 {
		return aggregate
	}
	aggregate.TotalMembers = len(profiles)

	skillStats := make(map[string]*skillAccumulator)
	skillOrder := []string{}
	languageStats := make(map[string]*languageAccumulator)

	for _, profile := range profiles {
		for _, skill := range profile.Skills {
			key := strings.ToLower(skill.Name)
			acc, ok := skillStats[key]
			if !ok {
				acc = &skillAccumulator{displayName: skill.Name, levels: make(map[string]int)}
				skillStats[key] = acc
				skillOrder = append(skillOrder, key)
			}
			acc.count++
			acc.levels[levelOrUnknown(skill.Proficiency)]++
		}
		for _, language := range profile.Languages {
			acc, ok := languageStats[language.Code]
			if !ok {
				acc = &languageAccumulator{displayName: language.Name, levels: make(map[string]int)}
				languageStats[language.Code] = acc
			}
			acc.count++
			acc.levels[levelOrUnknown(language.Fluency)]++
		}
	}

	total := float64(aggregate.TotalMembers)
	for _, key := range skillOrder {
		acc := skillStats[key]
		aggregate.Skills = append(aggregate.Skills, domain.SkillFrequency{
			SkillName:         acc.displayName,
			Count:             acc.count,
			Percentage:        roundPercentage(float64(acc.count) / total * 100),
			ProficiencyLevels: acc.levels,
		})
	}
	sort.SliceStable(aggregate.Skills, func(i, j int) bool {
		return aggregate.Skills[i].Count > aggregate.Skills[j].Count
	})

	for code, acc := range languageStats {
		aggregate.Languages[code] = domain.LanguageFrequency{
			Language:      acc.displayName,
			Count:         acc.count,
			Percentage:    roundPercentage(float64(acc.count) / total * 100),
			FluencyLevels: acc.levels,
		}
	}

	return aggregate
}

func levelOrUnknown(level string) string {
	if level == "" {
		return domain.LevelUnknown
	}
	return level
}

// roundPercentage redondea a 2 decimales, la precision del contrato de salida.
func roundPercentage(value float64) float64 {
	return math.Round(value*100) / 100
}
