package identity

// Access decisions are pure functions over the acting identity and the
// owner recorded on the target resource. Ownership is always userID
// equality; there is no ACL table.

// CanMutate decides whether actor may update or soft-delete a resource
// owned by ownerID. Rules, in order: anonymous callers are denied; admins
// are allowed only when the resource type grants the admin override
// (posts and accounts do, comments do not); otherwise only the owner.
func CanMutate(actor Identity, ownerID string, adminOverride bool) bool {
	if actor.IsAnonymous() {
		return false
	}
	if adminOverride && actor.IsAdmin() {
		return true
	}
	return actor.UserID == ownerID
}

// Editable computes the viewer-relative edit flag attached to post read
// responses. Unlike CanMutate it is strict ownership: admins who could in
// fact mutate the post still see edit=false.
func Editable(actor Identity, ownerID string) bool {
	return !actor.IsAnonymous() && actor.UserID == ownerID
}
