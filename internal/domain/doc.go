// Package domain contains the recipe catalog's entities, their field-level
// validation rules and the error taxonomy shared by every layer above it.
//
// The package is persistence- and transport-agnostic: it performs no I/O and
// imports nothing outside the standard library. Relations between entities
// are expressed by id; names of referenced ingredients are filled in only when
// a recipe is read back from a store.
package domain
