// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Every key can be set through a STUDY_-prefixed environment variable. The AI
// credential, model name, port and runtime mode are also read from their
// unprefixed names (GEMINI_API_KEY, GEMINI_MODEL, PORT, APP_ENV/NODE_ENV).
package config
