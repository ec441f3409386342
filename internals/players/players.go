package players

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/peladahub/api-server/internals/images"
	"github.com/peladahub/api-server/internals/payments"
	"github.com/peladahub/api-server/internals/storage"
	"github.com/peladahub/api-server/internals/teams"
)

var ErrPlayerNotFound = errors.New("player not found")

// Service owns the roster. Deletes and resets cascade into the team
// assignment and payment tracker so neither is left holding ids of players
// that no longer exist; the ledger history is deliberately untouched.
type Service struct {
	Store    storage.Store
	Images   images.Store
	Teams    *teams.Service
	Payments *payments.Service
	Log      *logrus.Logger
}

func New(store storage.Store, imgs images.Store, ts *teams.Service, ps *payments.Service, log *logrus.Logger) *Service {
	return &Service{Store: store, Images: imgs, Teams: ts, Payments: ps, Log: log}
}

func (s *Service) load() ([]Player, error) {
	players := []Player{}
	if err := s.Store.Read(storage.CollectionPlayers, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (s *Service) List() ([]Player, error) {
	return s.load()
}

// Create registers a player. photoRef is the already-stored photo reference,
// empty when no photo was uploaded.
func (s *Service) Create(name string, isGoalkeeper bool, photoRef string) (Player, error) {
	players, err := s.load()
	if err != nil {
		return Player{}, err
	}

	id := time.Now().UnixMilli()
	for _, existing := range players {
		if id <= existing.ID {
			id = existing.ID + 1
		}
	}
	p := Player{
		ID:           id,
		Name:         name,
		IsGoalkeeper: isGoalkeeper,
		Photo:        photoRef,
	}
	players = append(players, p)

	if err := s.Store.Write(storage.CollectionPlayers, &players); err != nil {
		return Player{}, err
	}
	s.Log.WithFields(logrus.Fields{"player": p.ID, "name": p.Name}).Info("player created")
	return p, nil
}

// Update edits a player in place. An empty name keeps the old one; a
// non-empty photoRef replaces the photo and deletes the previous asset.
func (s *Service) Update(id int64, name string, isGoalkeeper bool, photoRef string) (Player, error) {
	players, err := s.load()
	if err != nil {
		return Player{}, err
	}

	for i := range players {
		if players[i].ID != id {
			continue
		}
		if photoRef != "" {
			if players[i].Photo != "" {
				if err := s.Images.Delete(players[i].Photo); err != nil {
					s.Log.WithError(err).Warn("could not delete replaced photo")
				}
			}
			players[i].Photo = photoRef
		}
		if name != "" {
			players[i].Name = name
		}
		players[i].IsGoalkeeper = isGoalkeeper

		if err := s.Store.Write(storage.CollectionPlayers, &players); err != nil {
			return Player{}, err
		}
		return players[i], nil
	}

	return Player{}, ErrPlayerNotFound
}

// Delete removes a player, their photo, their team slots and their payment
// statuses. Ledger entries they generated stay in the history.
func (s *Service) Delete(id int64) error {
	players, err := s.load()
	if err != nil {
		return err
	}

	idx := -1
	for i, p := range players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrPlayerNotFound
	}

	if players[idx].Photo != "" {
		if err := s.Images.Delete(players[idx].Photo); err != nil {
			s.Log.WithError(err).Warn("could not delete player photo")
		}
	}
	players = append(players[:idx], players[idx+1:]...)

	if err := s.Store.Write(storage.CollectionPlayers, &players); err != nil {
		return err
	}
	if err := s.Teams.RemovePlayer(id); err != nil {
		return err
	}
	if err := s.Payments.RemovePlayer(id); err != nil {
		return err
	}

	s.Log.WithField("player", id).Info("player deleted")
	return nil
}

// ResetAll wipes the roster and cascades: payment statuses and fee base are
// cleared, both teams emptied, every stored photo deleted.
func (s *Service) ResetAll() error {
	if err := s.Images.Reset(); err != nil {
		s.Log.WithError(err).Warn("could not clear photo store")
	}

	players := []Player{}
	if err := s.Store.Write(storage.CollectionPlayers, &players); err != nil {
		return err
	}
	if err := s.Payments.ResetAll(); err != nil {
		return err
	}
	if err := s.Teams.Reset(); err != nil {
		return err
	}

	s.Log.Info("roster reset")
	return nil
}
