package repository

import "github.com/aferraro/badge-scanner/gen/ent"

// IsNotFound reports whether err is an ent not-found error, so callers
// outside the repository layer do not import the generated package.
func IsNotFound(err error) bool {
	return ent.IsNotFound(err)
}

// IsConstraintError reports whether err is a unique or foreign key violation.
func IsConstraintError(err error) bool {
	return ent.IsConstraintError(err)
}
