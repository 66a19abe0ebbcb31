package models

// User is the authenticated customer as the backend reports it.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	FullName     string `json:"fullName,omitempty"`
	Role         string `json:"role,omitempty"`
	PhotoURL     string `json:"photoUrl,omitempty"`
	AuthProvider string `json:"authProvider,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// GoogleLoginRequest forwards a validated Google ID token to the backend,
// which exchanges it for its own session token.
type GoogleLoginRequest struct {
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	FirebaseToken string `json:"firebaseToken"`
	FirebaseUID   string `json:"firebaseUid,omitempty"`
	PhotoURL      string `json:"photoUrl,omitempty"`
}

// AuthResponse is what the backend returns on any successful login. Some
// backend versions flatten the user fields next to the token, so both
// shapes are kept and reconciled by ResolvedUser.
type AuthResponse struct {
	Token    string `json:"token"`
	User     *User  `json:"user,omitempty"`
	UserID   int64  `json:"userId,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Role     string `json:"role,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// ResolvedUser returns the nested user when present, otherwise one built
// from the flattened fields.
func (r *AuthResponse) ResolvedUser() User {
	if r.User != nil {
		return *r.User
	}
	return User{
		ID:       r.UserID,
		Email:    r.Email,
		Name:     r.FullName,
		FullName: r.FullName,
		Role:     r.Role,
		PhotoURL: r.PhotoURL,
	}
}

type ChangePasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}
