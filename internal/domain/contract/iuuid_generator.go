package contract

// IUUIDGenerator abstracts ID generation for entities.
type IUUIDGenerator interface {
	NewUUID() string
}
