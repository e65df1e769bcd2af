// Package maybe implements the optional container kind: a Maybe[T] is either
// Just(v) or Nothing. Nothing is terminal, once a step produces it every
// later transform is skipped.
//
// Highlights:
// - Just/Nothing/Unit: construct Maybe[T]
// - Bind: pass the held value to a transform returning Maybe[Out]
// - Chain: bind transforms left to right with short-circuit on Nothing
// - Map/Validate/Try: lift plain functions, predicates and (Out, error) calls
// - Tee/Match: side effects and reduction to a concrete value
// - FromOption/ToOption: convert from and to samber/mo options
package maybe
