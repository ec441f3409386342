package teams

// Slot caps. Enforced at interactive placement and by the generator, never
// by Save.
const (
	MaxField = 5
	MaxBench = 4
)

// Team is one side of the monthly draft: a goalkeeper slot, up to five field
// slots and up to four bench slots, all holding player ids.
type Team struct {
	Goalkeeper *int64  `json:"goleiro"`
	Field      []int64 `json:"linha"`
	Bench      []int64 `json:"reservas"`
}

// Assignment maps players into the two teams. Anyone absent from every slot
// is implicitly in the available pool.
type Assignment struct {
	Team1 Team `json:"time1"`
	Team2 Team `json:"time2"`
}

func emptyTeam() Team {
	return Team{Goalkeeper: nil, Field: []int64{}, Bench: []int64{}}
}

func EmptyAssignment() Assignment {
	return Assignment{Team1: emptyTeam(), Team2: emptyTeam()}
}

// PoolPlayer is the roster slice the generator needs.
type PoolPlayer struct {
	ID           int64 `json:"id"`
	IsGoalkeeper bool  `json:"isGoleiro"`
}
