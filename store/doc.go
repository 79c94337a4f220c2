// Package store is an optional, collector-side audit log of aggregate
// results and batch metadata, backed by PostgreSQL. It sits entirely
// outside the VDAF core — spec.md §1 excludes persistence from the core's
// scope — and the core's prio3.Prio3 type never imports it.
package store
