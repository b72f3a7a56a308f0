// Package openai implements the ai interfaces against OpenAI-compatible APIs.
//
// It targets a single fixed endpoint configured by the caller (OpenRouter by
// default) and uses langchaingo clients for both chat completions and
// embeddings. The package performs no retries and no provider failover; one
// request in, one response out.
package openai
