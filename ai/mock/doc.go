// Package mock provides test doubles for the ai interfaces.
//
// The doubles default to deterministic behavior (hash-derived embedding
// vectors, empty JSON completions) and accept injected functions for
// test-specific responses. They record call counts, prompts, and sampling
// temperatures so tests can assert on how the services were used.
package mock
