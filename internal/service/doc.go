// Package service is the facade over the recipe catalog. Every operation runs
// inside one store transaction, validates before it writes, and reports
// failures using the internal/domain error kinds.
package service
