// Package account implements registration, login, role management, and
// profile lifecycle for platform users.
//
// Layering:
// - domain: account entity, invariants, errors
// - application: commands/queries using explicit ports
// - ports: stable boundaries for persistence, hashing, and token issuance
// - adapters: concrete HTTP, memory, bcrypt, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under the identity-access context.
// - Do not import other context adapters into domain/application.
// - Accounts are never hard-deleted; every read path except uniqueness and
//   login lookups filters soft-deleted rows.
package account
