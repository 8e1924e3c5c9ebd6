// Package blog implements the post lifecycle: authoring, partial updates,
// soft deletion, and public listing with viewer-relative edit flags.
//
// Layering:
// - domain: post entity, invariants, errors
// - application: commands/queries using explicit ports
// - ports: stable boundaries for persistence and cross-context reads
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under the publishing context.
// - Author usernames come through the AccountDirectory port; never import
//   identity-access adapters here.
// - CreatedBy is immutable after creation and deletion is terminal.
package blog
