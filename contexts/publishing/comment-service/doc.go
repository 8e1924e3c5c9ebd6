// Package comment implements discussion threads attached to blog posts.
//
// Layering mirrors the other context services: domain, application,
// ports, adapters, transport.
//
// Boundary notes:
// - Comments attach only to live posts, checked through the PostDirectory
//   port at creation time; once created they survive later post deletion.
// - Only the author may edit or delete a comment. There is no admin
//   override here, unlike posts; the asymmetry is deliberate and pinned
//   by tests.
package comment
