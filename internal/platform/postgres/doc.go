// Package postgres implements the store interfaces on PostgreSQL via the
// pgx stdlib driver. Structured columns (dietary preferences, tags,
// ingredients, social links, affiliate links) are stored as JSONB so the
// stored set/list round-trips exactly. Uniqueness and referential rules
// live in the schema; this package maps constraint violations onto the
// store error taxonomy.
package postgres
