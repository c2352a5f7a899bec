package domain

// DefaultIsAdmin is the flag every user receives on creation.
const DefaultIsAdmin = "false"

// User is a stored account. Password is opaque to storage; callers decide
// whether it holds a hash.
type User struct {
	ID       string `json:"id" bson:"_id"`
	Username string `json:"username" bson:"username"`
	Password string `json:"-" bson:"password"`
	IsAdmin  string `json:"isAdmin" bson:"is_admin"`
}

// NewUser is the accepted input for creating a user.
type NewUser struct {
	Username string
	Password string
}
