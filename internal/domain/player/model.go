package player

// Player belongs to exactly one team.
type Player struct {
	ID           int64
	TeamID       int64
	Name         string
	Position     string
	JerseyNumber *int
}
