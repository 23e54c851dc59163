package service

// Umbrales de clasificacion y severidad del pipeline de analisis.
// Viven en un solo lugar para que los tests puedan afirmarlos directamente
// y un cambio de politica toque un unico archivo.
const (
	// Una habilidad es redundante cuando la cobertura del equipo supera
	// estrictamente este valor (0.8 exacto no clasifica).
	RedundancyThreshold = 0.8
	// Una habilidad o idioma aporta valor cuando la cobertura del equipo
	// esta estrictamente por debajo de este valor (0.2 exacto no clasifica).
	ValueAddThreshold = 0.2

	// Cortes de severidad para alertas de redundancia.
	SeverityHighCoverage   = 0.9
	SeverityMediumCoverage = 0.85

	// Limites de la alerta de aporte: habilidades expuestas en la alerta y
	// nombres citados dentro del mensaje.
	ValueAddSkillLimit       = 10
	ValueAddMessageNameLimit = 3
)
