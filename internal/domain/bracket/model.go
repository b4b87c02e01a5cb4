package bracket

const (
	EliminationSingle = "single"
	EliminationDouble = "double"
)

// Bracket groups the matches of one competition draw. EliminationType is
// carried through untouched.
type Bracket struct {
	ID              int64
	EventID         *int64
	Name            string
	SportType       string
	EliminationType string
}
