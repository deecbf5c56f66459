package identity

// User is a user record. Records are created at signup and never mutated;
// there is no update or delete path, so a User handed out by a store is safe
// to retain without copying concerns.
type User struct {
	Email       Email
	Password    Password
	Requires2FA bool
}

// NewUser validates raw credentials and assembles a User.
func NewUser(rawEmail, rawPassword string, requires2FA bool, policy PasswordPolicy) (User, error) {
	email, err := ParseEmail(rawEmail)
	if err != nil {
		return User{}, err
	}
	password, err := ParsePassword(rawPassword, policy)
	if err != nil {
		return User{}, err
	}
	return User{
		Email:       email,
		Password:    password,
		Requires2FA: requires2FA,
	}, nil
}
