package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"example.com/signup/internal/domain"
)

//go:embed seed.json
var seedJSON []byte

type seedActivity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// DefaultCatalog decodes the embedded seed catalog the registry is
// constructed from at startup.
func DefaultCatalog() (map[string]domain.Activity, error) {
	var raw map[string]seedActivity
	if err := json.Unmarshal(seedJSON, &raw); err != nil {
		return nil, fmt.Errorf("registry: decode seed catalog: %w", err)
	}

	catalog := make(map[string]domain.Activity, len(raw))
	for name, seed := range raw {
		catalog[name] = domain.Activity{
			Name:            name,
			Description:     seed.Description,
			Schedule:        seed.Schedule,
			MaxParticipants: seed.MaxParticipants,
			Participants:    seed.Participants,
		}
	}
	return catalog, nil
}
