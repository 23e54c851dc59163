package domain

// SkillDelta compara una habilidad del candidato contra el equipo.
// IsRedundant e IsValueAdd son mutuamente excluyentes: los umbrales de
// clasificacion no se solapan.
type SkillDelta struct {
	SkillName                   string             `json:"skillName"`
	CandidateProficiency        string             `json:"candidateProficiency"`
	TeamCoverage                float64            `json:"teamCoverage"`
	TeamProficiencyDistribution map[string]float64 `json:"teamProficiencyDistribution,omitempty"`
	IsRedundant                 bool               `json:"isRedundant"`
	IsValueAdd                  bool               `json:"isValueAdd"`
}

// LanguageDelta compara un idioma del candidato contra el equipo.
// Para idiomas solo existe la nocion de aporte, no de redundancia.
type LanguageDelta struct {
	LanguageCode     string  `json:"languageCode"`
	LanguageName     string  `json:"languageName"`
	CandidateFluency string  `json:"candidateFluency"`
	TeamCoverage     float64 `json:"teamCoverage"`
	IsValueAdd       bool    `json:"isValueAdd"`
}

// DeltaSummary son los totales precalculados para la capa de presentacion.
type DeltaSummary struct {
	TotalRedundantSkills   int `json:"totalRedundantSkills"`
	TotalValueAddSkills    int `json:"totalValueAddSkills"`
	TotalValueAddLanguages int `json:"totalValueAddLanguages"`
	TotalTeamMembers       int `json:"totalTeamMembers"`
}

// DeltaAnalysis es la salida del DeltaAnalyzer.
// RedundantSkills va de mayor a menor cobertura; ValueAddSkills de menor a
// mayor (lo mas raro primero); ValueAddLanguages conserva el orden en que el
// candidato declaro sus idiomas.
type DeltaAnalysis struct {
	RedundantSkills   []SkillDelta    `json:"redundantSkills"`
	ValueAddSkills    []SkillDelta    `json:"valueAddSkills"`
	ValueAddLanguages []LanguageDelta `json:"valueAddLanguages"`
	Summary           DeltaSummary    `json:"summary"`
}
