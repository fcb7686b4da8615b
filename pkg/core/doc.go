// Package core is the stable public surface of the vet secrets-detection
// engine. Consumers — batch scanners, language servers, git-history
// auditors — depend on this package rather than on internals.
//
// The engine compiles a registry of detection patterns into a matcher that
// combines keyword prefiltering, regex extraction, structural (AST)
// candidates and entropy gating, then fingerprints, deduplicates and
// suppresses findings before they reach the consumer.
package core
