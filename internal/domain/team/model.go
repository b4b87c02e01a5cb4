package team

import (
	"fmt"
	"strings"
)

// Team is a roster registered for one sport.
type Team struct {
	ID    int64
	Name  string
	Sport string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be positive")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(t.Sport) == "" {
		return fmt.Errorf("team sport is required")
	}

	return nil
}
