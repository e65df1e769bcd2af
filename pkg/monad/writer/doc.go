// Package writer implements the annotated-value container kind. A Logged[T]
// carries a value and a log of strings; binding transforms the value and
// appends the transform's log after the existing one.
//
// Key operations:
// - New/Unit/Tell: construct Logged[T]
// - Bind/Chain: thread the value through transforms, accumulating the log
// - Map: transform the value only
package writer
