// Package domain defines the key, signature and prekey types shared across
// the app, together with the store and service contracts that operate on them.
//
// The plain types live in domain/types and the contracts in
// domain/interfaces; both are re-exported here so callers import one package.
package domain
