package genome

import (
	"encoding/json"
	"fmt"

	"team-fit/internal/domain"
)

// bioPayload refleja el subconjunto del payload upstream que nos interesa.
// Strengths y Languages quedan como RawMessage para poder degradar campos
// ausentes o con forma inesperada a listas vacias en vez de fallar.
type bioPayload struct {
	Person    json.RawMessage `json:"person"`
	Strengths json.RawMessage `json:"strengths"`
	Languages json.RawMessage `json:"languages"`
}

type bioPerson struct {
	Username string `json:"publicId"`
	Name     string `json:"name"`
}

// ParseBio convierte la respuesta cruda del upstream en un domain.Profile.
// Solo el JSON de nivel superior puede fallar; las listas internas que no
// sean arreglos se tratan como vacias.
func ParseBio(username string, raw []byte) (domain.Profile, error) {
	var payload bioPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.Profile{}, fmt.Errorf("parse bio %s: %w", username, err)
	}

	profile := domain.Profile{Username: username}

	var person bioPerson
	if err := json.Unmarshal(payload.Person, &person); err == nil {
		profile.Name = person.Name
		if person.Username != "" {
			profile.Username = person.Username
		}
	}

	var skills []domain.SkillObservation
	if err := json.Unmarshal(payload.Strengths, &skills); err == nil {
		profile.Skills = skills
	}

	var languages []domain.LanguageObservation
	if err := json.Unmarshal(payload.Languages, &languages); err == nil {
		profile.Languages = languages
	}

	return profile, nil
}
