package domain

// Severity indica que tan cubierta esta una habilidad redundante.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// RedundancyAlert agrupa deltas redundantes que comparten habilidad
// (nombre normalizado) y nivel declarado por el candidato.
type RedundancyAlert struct {
	Severity Severity     `json:"severity"`
	Message  string       `json:"message"`
	Skills   []SkillDelta `json:"skills"`
	Count    int          `json:"count"`
}

// ValueAddAlert es la recomendacion combinada de contratacion.
// Skills expone como maximo las 10 habilidades mas raras; Languages trae
// todos los idiomas que aportan valor.
type ValueAddAlert struct {
	Message   string          `json:"message"`
	Skills    []SkillDelta    `json:"skills"`
	Languages []LanguageDelta `json:"languages"`
}

// AlertSet es la salida del AlertGenerator. ValueAddAlert es nil cuando el
// candidato no aporta habilidades ni idiomas nuevos.
type AlertSet struct {
	RedundancyAlerts []RedundancyAlert `json:"redundancyAlerts"`
	ValueAddAlert    *ValueAddAlert    `json:"valueAddAlert"`
}
