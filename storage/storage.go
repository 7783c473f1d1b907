// Package storage provides key-based persistence for whole entity
// collections. Every save replaces the named collection in full; there are
// no partial or delta writes.
package storage

import "errors"

// Collection keys. The church_ prefix is kept for compatibility with data
// written by earlier versions of the ledger.
const (
	CollectionMembers     = "church_members"
	CollectionMemberships = "church_memberships"
	CollectionPayments    = "church_payments"
)

// Driver identifies a storage backend.
type Driver string

const (
	DriverFile   Driver = "file"
	DriverSQLite Driver = "sqlite"
	DriverMemory Driver = "memory"
)

// ErrInvalidCollection indicates a collection name outside the known set.
var ErrInvalidCollection = errors.New("storage: unknown collection")

// Store persists collections as JSON documents keyed by collection name.
// Load fills out (a pointer to a slice) with the stored records, leaving it
// empty when the collection has never been written. Save replaces the
// collection wholesale.
type Store interface {
	Driver() Driver
	Load(collection string, out any) error
	Save(collection string, v any) error
	Close() error
}

func validCollection(name string) bool {
	switch name {
	case CollectionMembers, CollectionMemberships, CollectionPayments:
		return true
	}
	return false
}
