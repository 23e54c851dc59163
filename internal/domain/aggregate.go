package domain

// SkillFrequency resume cuantos miembros del equipo declaran una habilidad.
// Count crece por observacion; Percentage viene redondeado a 2 decimales.
type SkillFrequency struct {
	SkillName         string         `json:"skillName"`
	Count             int            `json:"count"`
	Percentage        float64        `json:"percentage"`
	ProficiencyLevels map[string]int `json:"proficiencyLevels"`
}

// LanguageFrequency resume la presencia de un idioma en el equipo.
type LanguageFrequency struct {
	Language      string         `json:"language"`
	Count         int            `json:"count"`
	Percentage    float64        `json:"percentage"`
	FluencyLevels map[string]int `json:"fluencyLevels"`
}

// TeamAggregate es la salida del Aggregator: estadisticas del equipo completo.
// Skills viene ordenado por Count descendente (orden de aparicion en empates);
// Languages va indexado por codigo de idioma exacto.
type TeamAggregate struct {
	TotalMembers int                          `json:"totalMembers"`
	Skills       []SkillFrequency             `json:"skills"`
	Languages    map[string]LanguageFrequency `json:"languages"`
}
