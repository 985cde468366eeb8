package domain

import "time"

type (
	Category struct {
		ID        string
		Name      string
		IsActive  bool
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	HeroImage struct {
		ID       string
		URL      string
		Title    string
		Subtitle string
	}
)

type (
	User struct {
		ID           string
		Name         string
		Mobile       string
		PasswordHash string
		IsAdmin      bool
		IsApproved   bool
	}

	Registration struct {
		Name     string
		Mobile   string
		Password string
		IsAdmin  bool
	}

	// Principal is the authenticated caller of a request.
	Principal struct {
		UserID string
		Admin  bool
	}

	Session struct {
		User  User
		Token string
	}
)

// HasAdminRights reports whether u may use the back-office.
func (u User) HasAdminRights() bool {
	return u.IsAdmin && u.IsApproved
}
