package reconcile

import "github.com/cockroachdb/errors"

// Fatal error tiers. Collaborators mark their failures with one of these so the
// engine and the driver can tell a systemic failure from a per-file miss.
var (
	// ErrTransport marks network or protocol failures of the HTTP collaborators.
	ErrTransport = errors.New("transport error")

	// ErrStore marks failures of the curriculum store.
	ErrStore = errors.New("store error")

	// ErrIntegrity marks inconsistent upstream data, such as a file naming an unknown batch.
	ErrIntegrity = errors.New("referential integrity violation")
)

// TransportError wraps err as a transport failure.
func TransportError(err error, msg string) error {
	return errors.Mark(errors.Wrap(err, msg), ErrTransport)
}

// StoreError wraps err as a curriculum store failure.
func StoreError(err error, msg string) error {
	return errors.Mark(errors.Wrap(err, msg), ErrStore)
}

// IsFatal reports whether err belongs to one of the fatal tiers.
func IsFatal(err error) bool {
	return errors.IsAny(err, ErrTransport, ErrStore, ErrIntegrity)
}
