// Package config resolves the project layout used by a registry build: where
// sources are scanned, where copies are written, and which catalog document
// is merged. Settings come from an optional registry.yaml in the project root
// and REGISTRY_* environment variables; the defaults reproduce the standard
// src/ → registry/ + registry.json layout.
package config
