package service

// checkOwnership is the single ownership policy shared by every resource
// mutation: a remove or update is allowed only when the authenticated
// principal is the stored owner of the resource.
//
// Returns ErrForbidden when the IDs differ. Kept in one place so posts,
// comments and follow relationships cannot drift apart in how they enforce
// ownership.
func checkOwnership(principalID, resourceOwnerID string) error {
	if principalID != resourceOwnerID {
		return ErrForbidden
	}
	return nil
}
