package domain

// Record is implemented by every persisted entity. Methods use value receivers
// so generic stores can work with plain values and replace them wholesale.
type Record[T any] interface {
	Identity() int64
	WithIdentity(id int64) T
	Entity() string
}
