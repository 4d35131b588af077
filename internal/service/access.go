package service

// AdminRole is the role marker the upstream auth layer attaches to
// administrative actors.
const AdminRole = "ADMIN"

// Allowed decides whether an actor may act on a resource owned by
// ownerEmail: admins always may, everyone else only on their own
// resources. Email comparison is case-sensitive, identity-equality is
// defined by the email string alone.
func Allowed(actorEmail string, actorRoles []string, ownerEmail string) bool {
	if HasRole(actorRoles, AdminRole) {
		return true
	}
	return actorEmail != "" && actorEmail == ownerEmail
}

func HasRole(roles []string, want string) bool {
	for _, role := range roles {
		if role == want {
			return true
		}
	}
	return false
}
