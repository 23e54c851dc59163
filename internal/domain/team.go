package domain

import (
	"time"

	"github.com/google/uuid"
)

// Team es un roster guardado: la lista de usernames que componen un equipo.
// Los perfiles no se persisten; se vuelven a recuperar en cada analisis.
type Team struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"createdAt"`
}
