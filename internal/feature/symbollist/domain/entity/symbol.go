// Package entity defines the domain models for the symbollist feature.
package entity

// Symbol represents a selectable market ticker.
// Code is the provider-facing ticker (e.g. "GC=F") and Name is the label shown in the selector.
type Symbol struct {
	Code    string
	Name    string
	SortKey int
}
