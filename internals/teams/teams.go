package teams

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/peladahub/api-server/internals/storage"
)

type Service struct {
	Store storage.Store
	Log   *logrus.Logger
}

func New(store storage.Store, log *logrus.Logger) *Service {
	return &Service{Store: store, Log: log}
}

// Load returns the saved assignment, empty teams when never saved.
func (s *Service) Load() (Assignment, error) {
	a := EmptyAssignment()
	if err := s.Store.Read(storage.CollectionTeams, &a); err != nil {
		return a, err
	}
	if a.Team1.Field == nil {
		a.Team1.Field = []int64{}
	}
	if a.Team1.Bench == nil {
		a.Team1.Bench = []int64{}
	}
	if a.Team2.Field == nil {
		a.Team2.Field = []int64{}
	}
	if a.Team2.Bench == nil {
		a.Team2.Bench = []int64{}
	}
	return a, nil
}

// Save replaces the assignment wholesale. No structural checks run here:
// slot caps and goalkeeper eligibility are interactive placement rules, the
// submitted configuration is trusted verbatim.
func (s *Service) Save(a Assignment) error {
	return s.Store.Write(storage.CollectionTeams, &a)
}

// Reset empties both teams, returning every player to the available pool.
func (s *Service) Reset() error {
	a := EmptyAssignment()
	return s.Store.Write(storage.CollectionTeams, &a)
}

// RemovePlayer strips a deleted player out of every slot.
func (s *Service) RemovePlayer(playerID int64) error {
	a, err := s.Load()
	if err != nil {
		return err
	}

	changed := false
	for _, team := range []*Team{&a.Team1, &a.Team2} {
		if team.Goalkeeper != nil && *team.Goalkeeper == playerID {
			team.Goalkeeper = nil
			changed = true
		}
		team.Field, changed = removeID(team.Field, playerID, changed)
		team.Bench, changed = removeID(team.Bench, playerID, changed)
	}
	if !changed {
		return nil
	}
	return s.Store.Write(storage.CollectionTeams, &a)
}

func removeID(ids []int64, playerID int64, changed bool) ([]int64, bool) {
	kept := ids[:0]
	for _, id := range ids {
		if id == playerID {
			changed = true
			continue
		}
		kept = append(kept, id)
	}
	return kept, changed
}

// AutoGenerate draws a random assignment: goalkeepers and field players are
// shuffled separately, then slots fill in fixed order (both goalkeeper slots,
// both field lines, both benches), draining the matching pool. Whoever is
// left when the pools run dry stays in the available pool. Uniform random
// under the slot caps, not balanced.
func AutoGenerate(players []PoolPlayer) Assignment {
	rand.Seed(uint64(time.Now().UnixNano()))

	var goalkeepers, fieldPool []int64
	for _, p := range players {
		if p.IsGoalkeeper {
			goalkeepers = append(goalkeepers, p.ID)
		} else {
			fieldPool = append(fieldPool, p.ID)
		}
	}
	rand.Shuffle(len(goalkeepers), func(i, j int) {
		goalkeepers[i], goalkeepers[j] = goalkeepers[j], goalkeepers[i]
	})
	rand.Shuffle(len(fieldPool), func(i, j int) {
		fieldPool[i], fieldPool[j] = fieldPool[j], fieldPool[i]
	})

	a := EmptyAssignment()

	takeGK := func() *int64 {
		if len(goalkeepers) == 0 {
			return nil
		}
		id := goalkeepers[0]
		goalkeepers = goalkeepers[1:]
		return &id
	}
	take := func(max int) []int64 {
		n := max
		if n > len(fieldPool) {
			n = len(fieldPool)
		}
		out := append([]int64{}, fieldPool[:n]...)
		fieldPool = fieldPool[n:]
		return out
	}

	a.Team1.Goalkeeper = takeGK()
	a.Team2.Goalkeeper = takeGK()
	a.Team1.Field = take(MaxField)
	a.Team2.Field = take(MaxField)
	a.Team1.Bench = take(MaxBench)
	a.Team2.Bench = take(MaxBench)

	return a
}
