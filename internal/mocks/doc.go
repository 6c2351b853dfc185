// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock exposes Fn fields so tests can override
// individual methods; unset methods return the mock's default values.
package mocks
