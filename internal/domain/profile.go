package domain

// Niveles de dominio reportados por la API de genomas para una habilidad.
const (
	ProficiencyInterested = "no-experience-interested"
	ProficiencyNovice     = "novice"
	ProficiencyProficient = "proficient"
	ProficiencyExpert     = "expert"
	ProficiencyMaster     = "master"
)

// Niveles de fluidez para un idioma.
const (
	FluencyBasic          = "basic"
	FluencyConversational = "conversational"
	FluencyFullyFluent    = "fully-fluent"
	FluencyNative         = "native-or-bilingual"
)

// LevelUnknown agrupa observaciones sin nivel declarado (habilidad o idioma).
const LevelUnknown = "unknown"

// SkillObservation es una habilidad declarada por una persona.
type SkillObservation struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// LanguageObservation es un idioma declarado por una persona.
type LanguageObservation struct {
	Code    string `json:"code"`
	Name    string `json:"language"`
	Fluency string `json:"fluency,omitempty"`
}

// Profile es el registro ya parseado que entrega el recuperador de perfiles.
// Las listas pueden venir vacias o ausentes; nunca es un error.
type Profile struct {
	Username  string                `json:"username,omitempty"`
	Name      string                `json:"name,omitempty"`
	Skills    []SkillObservation    `json:"strengths,omitempty"`
	Languages []LanguageObservation `json:"languages,omitempty"`
}

var proficiencyLabels = map[string]string{
	ProficiencyInterested: "Interested",
	ProficiencyNovice:     "Novice",
	ProficiencyProficient: "Proficient",
	ProficiencyExpert:     "Expert",
	ProficiencyMaster:     "Master",
	LevelUnknown:          "Unknown",
}

var fluencyLabels = map[string]string{
	FluencyBasic:          "Basic",
	FluencyConversational: "Conversational",
	FluencyFullyFluent:    "Fully Fluent",
	FluencyNative:         "Native or Bilingual",
	LevelUnknown:          "Unknown",
}

// ProficiencyLabel devuelve la etiqueta de presentacion del nivel.
// Valores fuera de la tabla pasan sin cambios.
func ProficiencyLabel(level string) string {
	if label, ok := proficiencyLabels[level]; ok {
		return label
	}
	return level
}

// FluencyLabel devuelve la etiqueta de presentacion de la fluidez.
func FluencyLabel(fluency string) string {
	if label, ok := fluencyLabels[fluency]; ok {
		return label
	}
	return fluency
}
