// Package storage defines the persistent embedding cache abstraction and its
// binary serialization. The pipeline's run state is deliberately never
// persisted; the only durable data is content-addressed embedding vectors.
//
// The badger sub-package provides the BadgerDB-backed implementation.
package storage
