package payments

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/peladahub/api-server/internals/ledger"
	"github.com/peladahub/api-server/internals/storage"
)

var (
	ErrGoalkeeperExempt = errors.New("goalkeepers are exempt from the monthly fee")
	ErrAlreadyPaid      = errors.New("this player has already paid this fee")
	ErrInvalidAmount    = errors.New("payment amount must be positive")
	ErrPaymentNotFound  = errors.New("payment not found")
)

type Service struct {
	Store          storage.Store
	Ledger         *ledger.Service
	Log            *logrus.Logger
	MonthlyFeeBase float64
}

func New(store storage.Store, ls *ledger.Service, monthlyFeeBase float64, log *logrus.Logger) *Service {
	return &Service{Store: store, Ledger: ls, Log: log, MonthlyFeeBase: monthlyFeeBase}
}

func defaultPayments() Payments {
	return Payments{EventFeeBase: 0, Statuses: map[int64]FeeStatus{}}
}

func (s *Service) load() (Payments, error) {
	p := defaultPayments()
	if err := s.Store.Read(storage.CollectionPayments, &p); err != nil {
		return p, err
	}
	if p.Statuses == nil {
		p.Statuses = map[int64]FeeStatus{}
	}
	return p, nil
}

func (s *Service) roster() ([]rosterPlayer, error) {
	players := []rosterPlayer{}
	if err := s.Store.Read(storage.CollectionPlayers, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// Get returns the persisted payment document.
func (s *Service) Get() (Payments, error) {
	return s.load()
}

// Pay records a fee payment: a credit in the ledger plus the transaction
// reference in the status map. Goalkeepers never owe the monthly fee, a fee
// can only be paid once, and the amount must be positive.
func (s *Service) Pay(playerID int64, playerName string, ft FeeType, amount float64) (Payments, ledger.Ledger, error) {
	if amount <= 0 || math.IsNaN(amount) {
		return Payments{}, ledger.Ledger{}, ErrInvalidAmount
	}

	if ft == FeeMonthly {
		players, err := s.roster()
		if err != nil {
			return Payments{}, ledger.Ledger{}, err
		}
		for _, pl := range players {
			if pl.ID == playerID && pl.IsGoalkeeper {
				return Payments{}, ledger.Ledger{}, ErrGoalkeeperExempt
			}
		}
	}

	p, err := s.load()
	if err != nil {
		return p, ledger.Ledger{}, err
	}
	status := p.Statuses[playerID]
	if status.Ref(ft) != nil {
		return p, ledger.Ledger{}, ErrAlreadyPaid
	}

	desc := "Pagamento Mensalidade"
	if ft == FeeEvent {
		desc = "Pagamento Churrasco"
	}
	tx, box, err := s.Ledger.Append(ledger.Transaction{
		Description: desc + " - " + playerName,
		Amount:      amount,
		Direction:   ledger.DirectionCredit,
		PlayerID:    playerID,
		PlayerName:  playerName,
	})
	if err != nil {
		return p, box, err
	}

	status.SetRef(ft, &tx.ID)
	p.Statuses[playerID] = status
	if err := s.Store.Write(storage.CollectionPayments, &p); err != nil {
		return p, box, err
	}

	s.Log.WithFields(logrus.Fields{
		"player": playerID,
		"fee":    ft,
		"amount": amount,
	}).Info("fee paid")
	return p, box, nil
}

// Cancel reverses a recorded payment. The linked ledger transaction may
// already be gone (cash-box reset, spontaneous removal); the flag is cleared
// either way and ErrTransactionNotFound reports the missing half.
func (s *Service) Cancel(playerID int64, ft FeeType) (Payments, ledger.Ledger, error) {
	p, err := s.load()
	if err != nil {
		return p, ledger.Ledger{}, err
	}
	status := p.Statuses[playerID]
	ref := status.Ref(ft)
	if ref == nil {
		return p, ledger.Ledger{}, ErrPaymentNotFound
	}

	_, box, removeErr := s.Ledger.Remove(*ref)
	if removeErr != nil && !errors.Is(removeErr, ledger.ErrTransactionNotFound) {
		return p, box, removeErr
	}

	status.SetRef(ft, nil)
	p.Statuses[playerID] = status
	if err := s.Store.Write(storage.CollectionPayments, &p); err != nil {
		return p, box, err
	}

	s.Log.WithFields(logrus.Fields{"player": playerID, "fee": ft}).Info("fee payment cancelled")
	return p, box, removeErr
}

// SetFeeConfig replaces the event fee base. Negative or NaN input is coerced
// to zero rather than rejected.
func (s *Service) SetFeeConfig(eventFeeBase float64) (Payments, error) {
	if eventFeeBase < 0 || math.IsNaN(eventFeeBase) {
		eventFeeBase = 0
	}

	p, err := s.load()
	if err != nil {
		return p, err
	}
	p.EventFeeBase = eventFeeBase
	if err := s.Store.Write(storage.CollectionPayments, &p); err != nil {
		return p, err
	}
	return p, nil
}

// ResetStatuses clears every paid flag and nothing else. Unlike cancelling
// payments one by one, the ledger keeps the historical entries.
func (s *Service) ResetStatuses() (Payments, error) {
	p, err := s.load()
	if err != nil {
		return p, err
	}
	p.Statuses = map[int64]FeeStatus{}
	if err := s.Store.Write(storage.CollectionPayments, &p); err != nil {
		return p, err
	}
	return p, nil
}

// ResetAll wipes the whole document, fee base included. Used by the player
// registry cascade.
func (s *Service) ResetAll() error {
	p := defaultPayments()
	return s.Store.Write(storage.CollectionPayments, &p)
}

// RemovePlayer drops a deleted player's statuses. Ledger history stays.
func (s *Service) RemovePlayer(playerID int64) error {
	p, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := p.Statuses[playerID]; !ok {
		return nil
	}
	delete(p.Statuses, playerID)
	return s.Store.Write(storage.CollectionPayments, &p)
}

// MonthlyFeePerPlayer splits the monthly base across the non-goalkeepers.
func (s *Service) MonthlyFeePerPlayer(nonGoalkeepers int) float64 {
	if nonGoalkeepers == 0 {
		return 0
	}
	return s.MonthlyFeeBase / float64(nonGoalkeepers)
}

// Summarize derives the per-render numbers the payments page shows.
func (s *Service) Summarize(p Payments) (Summary, error) {
	players, err := s.roster()
	if err != nil {
		return Summary{}, err
	}

	nonGK := 0
	for _, pl := range players {
		if !pl.IsGoalkeeper {
			nonGK++
		}
	}
	perPlayer := s.MonthlyFeePerPlayer(nonGK)

	var collected float64
	for _, pl := range players {
		status := p.Statuses[pl.ID]
		if status.Monthly != nil {
			collected += perPlayer
		}
		if status.Event != nil {
			collected += p.EventFeeBase
		}
	}

	return Summary{
		Players:             len(players),
		NonGoalkeepers:      nonGK,
		MonthlyFeePerPlayer: perPlayer,
		EventFeeBase:        p.EventFeeBase,
		TotalCollected:      collected,
	}, nil
}
