// Package store opens the postgres database backing the todo CLI and
// bootstraps its schema.
//
// The store owns connection setup only. Statement construction and
// execution live in queryir/querysql and in the todo package; both talk to
// the database through the querysql.Querier and querysql.Execer interfaces,
// which the handle returned by DB satisfies.
//
// Opening is idempotent: the embedded schema uses create table if not
// exists, so an existing database is left untouched.
package store
