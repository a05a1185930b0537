package accounts

// User is a signed-up account. Email is the unique key, case-sensitive as
// stored. Records are immutable after signup and never deleted.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
