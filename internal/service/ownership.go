package service

// IsOwner decides whether the authenticated principal owns a resource.
// Both identities are already resolved by the caller; the decision itself
// is plain equality on the email identity key.
func IsOwner(ownerEmail, principalEmail string) bool {
	return ownerEmail == principalEmail
}
