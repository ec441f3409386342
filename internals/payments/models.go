package payments

import (
	"fmt"
)

// FeeType is one of the two fees the group charges.
type FeeType string

const (
	FeeMonthly FeeType = "mensalidade"
	FeeEvent   FeeType = "churrasco"
)

func ParseFeeType(s string) (FeeType, error) {
	switch FeeType(s) {
	case FeeMonthly, FeeEvent:
		return FeeType(s), nil
	}
	return "", fmt.Errorf("unknown fee type %q", s)
}

// FeeStatus links each fee to the ledger transaction that paid it, nil when
// unpaid.
type FeeStatus struct {
	Monthly *int64 `json:"mensalidade"`
	Event   *int64 `json:"churrasco"`
}

func (fs FeeStatus) Ref(ft FeeType) *int64 {
	if ft == FeeMonthly {
		return fs.Monthly
	}
	return fs.Event
}

func (fs *FeeStatus) SetRef(ft FeeType, ref *int64) {
	if ft == FeeMonthly {
		fs.Monthly = ref
	} else {
		fs.Event = ref
	}
}

// Payments is the persisted document: the event fee base plus per-player
// fee statuses keyed by player id.
type Payments struct {
	EventFeeBase float64             `json:"valorChurrascoBase"`
	Statuses     map[int64]FeeStatus `json:"pagamentosJogadores"`
}

// Summary is derived on every read, never stored.
type Summary struct {
	Players             int     `json:"jogadores"`
	NonGoalkeepers      int     `json:"jogadoresDeLinha"`
	MonthlyFeePerPlayer float64 `json:"valorMensalidade"`
	EventFeeBase        float64 `json:"valorChurrasco"`
	TotalCollected      float64 `json:"totalArrecadado"`
}

// rosterPlayer is the slice of the player document this package needs for
// the goalkeeper exemption and the per-head fee split.
type rosterPlayer struct {
	ID           int64 `json:"id"`
	IsGoalkeeper bool  `json:"isGoleiro"`
}
