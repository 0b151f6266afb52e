package classify

import "strings"

// Identity carries the configured values echoed in every result.
type Identity struct {
	// FullName is lower-cased and joined with underscores into the user ID.
	FullName string

	// DateOfBirth is appended to the user ID as configured (trimmed only).
	DateOfBirth string

	Email      string
	RollNumber string
}

// UserID derives the identity string for id.
func (id Identity) UserID() string {
	return DeriveUserID(id.FullName, id.DateOfBirth)
}

// DeriveUserID lower-cases fullName, splits it on whitespace runs, joins the
// fragments with "_" and appends "_" plus the trimmed date of birth.
//
//	DeriveUserID("John  Doe", "17091999") == "john_doe_17091999"
//	DeriveUserID("", "17091999")          == "_17091999"
func DeriveUserID(fullName, dob string) string {
	fragments := strings.Fields(strings.ToLower(fullName))
	return strings.Join(fragments, "_") + "_" + strings.TrimSpace(dob)
}
