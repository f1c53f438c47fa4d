package domain

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is persisted in shop_users. Password is stored and compared exactly as
// entered.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password,omitempty"`
	Role        string `json:"role"`
	CreatedAt   int64  `json:"createdAt,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Public returns a copy safe to hand to API clients.
func (u User) Public() User {
	u.Password = ""
	return u
}

type UserPatch struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Password    *string `json:"password,omitempty"`
}

// UserDraft is the signup form. Role is not part of it: signups are always customers.
type UserDraft struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,in_mobile"`
	Password    string `json:"password" validate:"required"`
}
