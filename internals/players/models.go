package players

// Player is the root entity everything else references by id. Wire names
// match the stored documents.
type Player struct {
	ID           int64  `json:"id"`
	Name         string `json:"nome"`
	IsGoalkeeper bool   `json:"isGoleiro"`
	Photo        string `json:"foto"`
}
