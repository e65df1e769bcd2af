package monad

// Bind applies a single transform to the container.
func Bind[T any, M Bindable[T, M]](m M, f func(T) M) M {
	return m.Bind(f)
}

// Chain applies the transforms left to right, threading the container
// produced by each step into the next one. A terminal container is returned
// as is and the remaining transforms are never invoked.
// With no transforms the input is returned unchanged.
func Chain[T any, M Bindable[T, M]](m M, fns ...func(T) M) M {
	if len(fns) == 0 {
		return m
	}

	current := m
	for _, f := range fns {
		if IsTerminal(current) {
			return current
		}
		current = current.Bind(f)
	}
	return current
}

// Compose returns the transform that runs f and then binds g to its result.
func Compose[T any, M Bindable[T, M]](f, g func(T) M) func(T) M {
	return func(v T) M {
		return f(v).Bind(g)
	}
}

// IsTerminal reports whether m implements Terminal and is terminal.
func IsTerminal(m any) bool {
	t, ok := m.(Terminal)
	return ok && t.IsTerminal()
}
