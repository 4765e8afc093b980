// Package middleware provides composable wrappers around a ProjectStore,
// adding cross-cutting persistence behavior without touching the backends.
package middleware

import "github.com/easel-ai/easel/pkg/ports"

// Middleware allows wrapping a ProjectStore to add behavior.
type Middleware func(ports.ProjectStore) ports.ProjectStore

// Chain applies middlewares right to left, so the first listed is the
// outermost wrapper.
func Chain(store ports.ProjectStore, mws ...Middleware) ports.ProjectStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
