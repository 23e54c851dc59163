package genome

import (
	"context"

	"team-fit/internal/domain"
)

// MockClient permite tests sin llamar a la API real.
type MockClient struct {
	Profiles map[string]domain.Profile
	People   []PersonSummary
	Err      error
}

func (m *MockClient) FetchBio(_ context.Context, username string) (domain.Profile, error) {
	if m.Err != nil {
		return domain.Profile{}, m.Err
	}
	profile, ok := m.Profiles[username]
	if !ok {
		return domain.Profile{}, ErrProfileNotFound
	}
	return profile, nil
}

func (m *MockClient) SearchPeople(_ context.Context, _ SearchQuery) ([]PersonSummary, error) {
	return m.People, m.Err
}
