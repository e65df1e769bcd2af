// Package list implements the sequence container kind. Binding applies the
// transform to every element and flattens the produced lists one level.
// A list is never terminal: an empty list simply propagates.
package list
