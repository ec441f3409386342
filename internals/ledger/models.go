package ledger

// Transaction directions, the wire values the front end sends.
const (
	DirectionCredit = "entrada"
	DirectionDebit  = "saida"
)

// Transaction is immutable once appended; the only mutation the ledger
// allows is removing it again.
type Transaction struct {
	ID          int64   `json:"id"`
	Date        string  `json:"data"`
	Description string  `json:"descricao"`
	Amount      float64 `json:"valor"`
	Direction   string  `json:"tipo"`
	PlayerID    int64   `json:"jogadorId,omitempty"`
	PlayerName  string  `json:"jogadorNome,omitempty"`
}

// Ledger holds the running cash-box balance and the transaction history,
// newest first. The balance is a cache of the fold over Transactions.
type Ledger struct {
	Balance      float64       `json:"saldoTotal"`
	Transactions []Transaction `json:"transacoes"`
}

// Recompute folds the signed amounts over the surviving transactions.
func (l Ledger) Recompute() float64 {
	var total float64
	for _, t := range l.Transactions {
		if t.Direction == DirectionCredit {
			total += t.Amount
		} else {
			total -= t.Amount
		}
	}
	return total
}
