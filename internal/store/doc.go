// Package store defines the persistence interfaces for the FitFoodie API
// and the shared error taxonomy that implementations map database failures
// onto. Concrete implementations live in internal/platform/postgres.
package store
