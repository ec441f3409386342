package payments_test

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/peladahub/api-server/internals/ledger"
	"github.com/peladahub/api-server/internals/payments"
	"github.com/peladahub/api-server/internals/storage"
)

type rosterEntry struct {
	ID           int64  `json:"id"`
	Name         string `json:"nome"`
	IsGoalkeeper bool   `json:"isGoleiro"`
}

func newServices(t *testing.T, roster []rosterEntry) (*payments.Service, *ledger.Service) {
	t.Helper()
	log := logrus.New()
	store, err := storage.NewFileStore(t.TempDir(), log)
	require.NoError(t, err)
	require.NoError(t, store.Write(storage.CollectionPlayers, &roster))

	ls := ledger.New(store, log)
	return payments.New(store, ls, 540, log), ls
}

func defaultRoster() []rosterEntry {
	return []rosterEntry{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Bruno"},
		{ID: 3, Name: "Caio"},
		{ID: 4, Name: "Davi", IsGoalkeeper: true},
	}
}

func TestGoalkeeperMonthlyAlwaysRejected(t *testing.T) {
	svc, ls := newServices(t, defaultRoster())

	for _, amount := range []float64{1, 180, 9999} {
		_, _, err := svc.Pay(4, "Davi", payments.FeeMonthly, amount)
		require.ErrorIs(t, err, payments.ErrGoalkeeperExempt)
	}

	// The exemption only covers the monthly fee.
	_, _, err := svc.Pay(4, "Davi", payments.FeeEvent, 50)
	require.NoError(t, err)

	box, err := ls.Get()
	require.NoError(t, err)
	require.Len(t, box.Transactions, 1)
}

func TestDuplicatePaymentRejectedWithoutLedgerMutation(t *testing.T) {
	svc, ls := newServices(t, defaultRoster())

	_, _, err := svc.Pay(1, "Ana", payments.FeeMonthly, 180)
	require.NoError(t, err)

	before, err := ls.Get()
	require.NoError(t, err)

	_, _, err = svc.Pay(1, "Ana", payments.FeeMonthly, 180)
	require.ErrorIs(t, err, payments.ErrAlreadyPaid)

	after, err := ls.Get()
	require.NoError(t, err)
	require.Equal(t, before.Balance, after.Balance)
	require.Len(t, after.Transactions, len(before.Transactions))
}

func TestPayRejectsNonPositiveAmount(t *testing.T) {
	svc, _ := newServices(t, defaultRoster())

	for _, amount := range []float64{0, -10, math.NaN()} {
		_, _, err := svc.Pay(1, "Ana", payments.FeeMonthly, amount)
		require.ErrorIs(t, err, payments.ErrInvalidAmount)
	}
}

func TestPayMonthlyForAna(t *testing.T) {
	svc, _ := newServices(t, defaultRoster())

	p, box, err := svc.Pay(1, "Ana", payments.FeeMonthly, 180)
	require.NoError(t, err)

	require.Equal(t, 180.0, box.Balance)
	require.Contains(t, box.Transactions[0].Description, "Mensalidade")
	require.Contains(t, box.Transactions[0].Description, "Ana")
	require.Equal(t, ledger.DirectionCredit, box.Transactions[0].Direction)

	ref := p.Statuses[1].Monthly
	require.NotNil(t, ref)
	require.Equal(t, box.Transactions[0].ID, *ref)
}

func TestCancelRestoresBalanceAndClearsReference(t *testing.T) {
	svc, ls := newServices(t, defaultRoster())

	before, err := ls.Get()
	require.NoError(t, err)

	p, _, err := svc.Pay(1, "Ana", payments.FeeMonthly, 180)
	require.NoError(t, err)
	txID := *p.Statuses[1].Monthly

	p, box, err := svc.Cancel(1, payments.FeeMonthly)
	require.NoError(t, err)
	require.Equal(t, before.Balance, box.Balance)
	require.Nil(t, p.Statuses[1].Monthly)
	for _, tx := range box.Transactions {
		require.NotEqual(t, txID, tx.ID)
	}

	// And paying again is allowed after the cancel.
	_, _, err = svc.Pay(1, "Ana", payments.FeeMonthly, 180)
	require.NoError(t, err)
}

func TestCancelWithoutPayment(t *testing.T) {
	svc, _ := newServices(t, defaultRoster())

	_, _, err := svc.Cancel(1, payments.FeeMonthly)
	require.ErrorIs(t, err, payments.ErrPaymentNotFound)
}

// A linked transaction can disappear underneath a recorded payment (cash-box
// reset, manual removal). Cancelling must still clear the paid flag so no
// dangling reference survives, while reporting the missing transaction.
func TestCancelToleratesMissingTransaction(t *testing.T) {
	svc, ls := newServices(t, defaultRoster())

	_, _, err := svc.Pay(1, "Ana", payments.FeeMonthly, 180)
	require.NoError(t, err)
	require.NoError(t, ls.Reset())

	p, _, err := svc.Cancel(1, payments.FeeMonthly)
	require.ErrorIs(t, err, ledger.ErrTransactionNotFound)
	require.Nil(t, p.Statuses[1].Monthly)

	// The cleared flag was persisted, not just returned.
	p, err = svc.Get()
	require.NoError(t, err)
	require.Nil(t, p.Statuses[1].Monthly)
}

// Bulk reset intentionally differs from cancelling one by one: the paid
// flags go away but the ledger keeps every historical entry.
func TestResetStatusesLeavesLedgerAlone(t *testing.T) {
	svc, ls := newServices(t, defaultRoster())

	_, _, err := svc.Pay(1, "Ana", payments.FeeMonthly, 180)
	require.NoError(t, err)
	_, _, err = svc.Pay(2, "Bruno", payments.FeeEvent, 50)
	require.NoError(t, err)

	before, err := ls.Get()
	require.NoError(t, err)

	p, err := svc.ResetStatuses()
	require.NoError(t, err)
	require.Empty(t, p.Statuses)

	after, err := ls.Get()
	require.NoError(t, err)
	require.Equal(t, before.Balance, after.Balance)
	require.Len(t, after.Transactions, len(before.Transactions))
}

func TestResetStatusesKeepsEventFeeBase(t *testing.T) {
	svc, _ := newServices(t, defaultRoster())

	_, err := svc.SetFeeConfig(75)
	require.NoError(t, err)

	p, err := svc.ResetStatuses()
	require.NoError(t, err)
	require.Equal(t, 75.0, p.EventFeeBase)
}

func TestSetFeeConfigCoercesBadInput(t *testing.T) {
	svc, _ := newServices(t, defaultRoster())

	p, err := svc.SetFeeConfig(-30)
	require.NoError(t, err)
	require.Equal(t, 0.0, p.EventFeeBase)

	p, err = svc.SetFeeConfig(math.NaN())
	require.NoError(t, err)
	require.Equal(t, 0.0, p.EventFeeBase)

	p, err = svc.SetFeeConfig(120.50)
	require.NoError(t, err)
	require.Equal(t, 120.50, p.EventFeeBase)
}

func TestMonthlyFeeSplit(t *testing.T) {
	// 3 non-goalkeepers splitting a 540 base pay 180 each; the goalkeeper
	// never enters the denominator.
	svc, _ := newServices(t, defaultRoster())

	require.Equal(t, 180.0, svc.MonthlyFeePerPlayer(3))
	require.Equal(t, 0.0, svc.MonthlyFeePerPlayer(0))

	p, err := svc.Get()
	require.NoError(t, err)
	summary, err := svc.Summarize(p)
	require.NoError(t, err)
	require.Equal(t, 4, summary.Players)
	require.Equal(t, 3, summary.NonGoalkeepers)
	require.Equal(t, 180.0, summary.MonthlyFeePerPlayer)
}

func TestSummaryTotalCollected(t *testing.T) {
	svc, _ := newServices(t, defaultRoster())

	_, err := svc.SetFeeConfig(50)
	require.NoError(t, err)
	_, _, err = svc.Pay(1, "Ana", payments.FeeMonthly, 180)
	require.NoError(t, err)
	_, _, err = svc.Pay(2, "Bruno", payments.FeeEvent, 50)
	require.NoError(t, err)

	p, err := svc.Get()
	require.NoError(t, err)
	summary, err := svc.Summarize(p)
	require.NoError(t, err)
	require.InDelta(t, 230.0, summary.TotalCollected, 1e-9)
}

func TestRemovePlayerDropsStatusesKeepsLedger(t *testing.T) {
	svc, ls := newServices(t, defaultRoster())

	_, _, err := svc.Pay(1, "Ana", payments.FeeMonthly, 180)
	require.NoError(t, err)

	require.NoError(t, svc.RemovePlayer(1))

	p, err := svc.Get()
	require.NoError(t, err)
	_, ok := p.Statuses[1]
	require.False(t, ok)

	box, err := ls.Get()
	require.NoError(t, err)
	require.Len(t, box.Transactions, 1)
}
