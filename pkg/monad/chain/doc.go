// Package chain provides a fluent wrapper around any monad.Bindable container.
//
// Key operations:
// - Start: begin a chain from a container
// - Then: bind a single transform
// - ThenAll: bind several transforms via monad.Chain
// - Ensure: run side effects while the chain is not terminal
// - Result/Steps: read the container and how many transforms ran
//
// For list, Steps counts one invocation per element.
package chain
