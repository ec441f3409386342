package ledger

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/peladahub/api-server/internals/storage"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type Service struct {
	Store storage.Store
	Log   *logrus.Logger
}

func New(store storage.Store, log *logrus.Logger) *Service {
	return &Service{Store: store, Log: log}
}

func defaultLedger() Ledger {
	return Ledger{Balance: 0, Transactions: []Transaction{}}
}

func (s *Service) load() (Ledger, error) {
	l := defaultLedger()
	if err := s.Store.Read(storage.CollectionLedger, &l); err != nil {
		return l, err
	}
	if l.Transactions == nil {
		l.Transactions = []Transaction{}
	}
	return l, nil
}

// Get returns the current cash-box state.
func (s *Service) Get() (Ledger, error) {
	return s.load()
}

// Append records t at the head of the history and applies it to the balance.
// The ledger itself does not validate the amount; spontaneous entries are the
// caller's responsibility and fee payments are validated upstream.
func (s *Service) Append(t Transaction) (Transaction, Ledger, error) {
	l, err := s.load()
	if err != nil {
		return Transaction{}, l, err
	}

	t.ID = time.Now().UnixMilli()
	// Head of the sequence is the newest entry; bump past it so two appends
	// in the same millisecond still get distinct ids.
	if len(l.Transactions) > 0 && t.ID <= l.Transactions[0].ID {
		t.ID = l.Transactions[0].ID + 1
	}
	t.Date = time.Now().Format(time.RFC3339)

	if t.Direction == DirectionCredit {
		l.Balance += t.Amount
	} else {
		l.Balance -= t.Amount
	}
	l.Transactions = append([]Transaction{t}, l.Transactions...)

	if err := s.Store.Write(storage.CollectionLedger, &l); err != nil {
		return Transaction{}, l, err
	}

	s.Log.WithFields(logrus.Fields{
		"transaction": t.ID,
		"direction":   t.Direction,
		"amount":      t.Amount,
	}).Info("transaction appended")
	return t, l, nil
}

// Remove cancels the transaction with the given id and reverses its effect
// on the balance. ErrTransactionNotFound is a soft condition for callers that
// still need to clear their own references.
func (s *Service) Remove(txID int64) (Transaction, Ledger, error) {
	l, err := s.load()
	if err != nil {
		return Transaction{}, l, err
	}

	idx := -1
	for i, t := range l.Transactions {
		if t.ID == txID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Transaction{}, l, ErrTransactionNotFound
	}

	removed := l.Transactions[idx]
	l.Transactions = append(l.Transactions[:idx], l.Transactions[idx+1:]...)
	if removed.Direction == DirectionCredit {
		l.Balance -= removed.Amount
	} else {
		l.Balance += removed.Amount
	}

	if err := s.Store.Write(storage.CollectionLedger, &l); err != nil {
		return removed, l, err
	}

	s.Log.WithField("transaction", txID).Info("transaction removed")
	return removed, l, nil
}

// Reset empties the cash-box.
func (s *Service) Reset() error {
	l := defaultLedger()
	return s.Store.Write(storage.CollectionLedger, &l)
}
