package ports

// IDGenerator produces opaque identifiers for new entities. Uniqueness is
// enforced by the store, which reports a collision as domain.ErrDuplicateKey.
type IDGenerator interface {
	NewID() string
}
