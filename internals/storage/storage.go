package storage

// Collection names. Each one maps to a single JSON document holding the
// whole entity set, read and written wholesale.
const (
	CollectionPlayers  = "jogadores"
	CollectionTeams    = "time-do-mes"
	CollectionLedger   = "caixinha"
	CollectionPayments = "pagamentos"
)

// Store reads and writes one JSON document per collection. Read decodes the
// current document into v; when the collection has never been written, the
// value v arrives with is persisted as the default and left untouched. There
// is no locking: concurrent read-modify-write cycles on the same collection
// can lose updates.
type Store interface {
	Read(collection string, v interface{}) error
	Write(collection string, v interface{}) error
}
