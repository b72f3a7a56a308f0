// Package ai provides abstractions for the AI services used by the analyzer.
//
// This package defines interfaces for the two external AI capabilities the
// pipeline consumes: text embeddings and language-model completions. The core
// domain and the pipeline depend on these abstractions rather than on a
// concrete provider.
//
// The package is designed around three interfaces:
//
//   - Embedder: generates vector embeddings from text
//   - Completer: issues single completion requests against a language model
//   - Provider: aggregates both services for convenient initialization
//
// Two implementation sub-packages exist:
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//     (OpenRouter, OpenAI, local servers)
//   - ai/mock: test doubles for unit testing without external dependencies
//
// Production constructors (openai.NewProvider and friends) return interface
// types to enforce abstraction. Mock constructors return concrete types so
// tests can inject behavior and make assertions on call counts.
package ai
