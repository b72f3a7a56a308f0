// Package retrieval builds an in-memory similarity index over embedded
// chunks and exposes it through the one-method Retriever interface.
//
// The index is brute-force cosine similarity over unit-normalized vectors,
// which is plenty for single-document scale. Embedding is delegated to an
// ai.Embedder; an optional storage.VectorCache avoids recomputing vectors
// for previously seen chunk content.
package retrieval
