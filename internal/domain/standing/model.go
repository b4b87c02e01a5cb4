package standing

import "sort"

// Record is a team's win/loss count over completed matches.
type Record struct {
	TeamID   int64
	TeamName string
	Sport    string
	Wins     int
	Losses   int
}

// Standing is a record ranked within its sport.
type Standing struct {
	Record
	Rank int
}

// Rank partitions records by sport and ranks each partition from 1 by wins
// descending. Rank is the position in the partition: teams with equal wins
// keep their input order and get consecutive ranks, never a shared one.
// Sports are emitted in ascending name order.
func Rank(records []Record) []Standing {
	bySport := make(map[string][]Record)
	sports := make([]string, 0)
	for _, r := range records {
		if _, ok := bySport[r.Sport]; !ok {
			sports = append(sports, r.Sport)
		}
		bySport[r.Sport] = append(bySport[r.Sport], r)
	}
	sort.Strings(sports)

	out := make([]Standing, 0, len(records))
	for _, sport := range sports {
		group := bySport[sport]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Wins > group[j].Wins
		})
		for i, r := range group {
			out = append(out, Standing{Record: r, Rank: i + 1})
		}
	}
	return out
}
