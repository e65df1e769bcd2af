package monad

// Bindable is the capability shared by every container kind.
// M is the container type itself, e.g. maybe.Maybe[T] implements
// Bindable[T, maybe.Maybe[T]].
type Bindable[T any, M any] interface {
	// Bind applies f to the raw value(s) held by the container and returns
	// a new container of the same kind
	Bind(f func(T) M) M
}

// Terminal is implemented by kinds that have a failure variant
type Terminal interface {
	// IsTerminal returns true once no further transform may be applied
	IsTerminal() bool
}

