// Package store holds every statement the loader sends to PostgreSQL.
//
// The DDL and the getnames function body are fixed text embedded from
// sql/*.sql; nothing is interpolated into them. Data-carrying statements
// are parameterized. Functions take a DBTX so they run inside whatever
// transaction the caller opened.
package store
