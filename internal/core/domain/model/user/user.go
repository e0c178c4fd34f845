package user

import (
	"errors"
	"time"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created through
	// the NewUser factory method or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrEmailIsRequired is returned when attempting to create a user without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")

	// ErrUserAlreadyVerified is returned when issuing a verification token for a
	// user whose email is already verified.
	ErrUserAlreadyVerified = errors.New("user is already verified")
)

// User is the aggregate root for every account on the platform: customers,
// delivery partners, restaurant staff and admins. The role decides which
// capabilities the account has; restaurant accounts additionally reference
// the restaurant they operate.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty email
//   - Must have a valid role
//   - A restaurant reference is only present on Restaurant accounts
//   - Can only be created through NewUser or RestoreUser
type User struct {
	// id is the unique identifier for the user
	id kernel.UUID

	// email is the login identity, unique across the platform
	email string

	firstName string
	lastName  string

	// role decides the account's capabilities
	role Role

	// restaurantID references the operated restaurant; nil for non-restaurant roles
	restaurantID *kernel.UUID

	// isVerified reports whether the email address has been confirmed
	isVerified bool

	// isBlocked is set by admins; blocked accounts cannot act
	isBlocked bool

	// isDeleted marks a soft-deleted account
	isDeleted bool

	// verificationToken is the pending six-digit email confirmation code
	verificationToken string

	// verificationExpiry is when the pending token stops being accepted
	verificationExpiry time.Time

	// isConstructed ensures the user was created via a constructor
	isConstructed bool
}

// NewUser creates a new User with validation. New accounts start unverified,
// unblocked and not deleted.
func NewUser(id kernel.UUID, email, firstName, lastName string, role Role) (*User, error) {
	user := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	user.firstName = firstName
	user.lastName = lastName
	return user, nil
}

// RestoreUser reconstructs a User from persistence, including flags and any
// pending verification token. Used only by repository implementations.
func RestoreUser(
	id kernel.UUID,
	email, firstName, lastName string,
	role Role,
	restaurantID *kernel.UUID,
	isVerified, isBlocked, isDeleted bool,
	verificationToken string,
	verificationExpiry time.Time,
) (*User, error) {
	user, err := NewUser(id, email, firstName, lastName, role)
	if err != nil {
		return nil, err
	}

	if restaurantID != nil {
		if err = restaurantID.Validate(); err != nil {
			return nil, err
		}
		rid := *restaurantID
		user.restaurantID = &rid
	}

	user.isVerified = isVerified
	user.isBlocked = isBlocked
	user.isDeleted = isDeleted
	user.verificationToken = verificationToken
	user.verificationExpiry = verificationExpiry
	return user, nil
}

// Validate ensures the User was constructed through NewUser or RestoreUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// Role returns the account role.
func (u *User) Role() Role {
	return u.role
}

// RestaurantID returns the operated restaurant's ID, or nil for
// non-restaurant accounts.
func (u *User) RestaurantID() *kernel.UUID {
	return u.restaurantID
}

// IsVerified reports whether the email address has been confirmed.
func (u *User) IsVerified() bool {
	return u.isVerified
}

// IsBlocked reports whether an admin has blocked the account.
func (u *User) IsBlocked() bool {
	return u.isBlocked
}

// IsDeleted reports whether the account has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.isDeleted
}

// IsActive reports whether the account may act: not blocked and not deleted.
func (u *User) IsActive() bool {
	return !u.isBlocked && !u.isDeleted
}

// VerificationToken returns the pending email confirmation code, empty if none.
func (u *User) VerificationToken() string {
	return u.verificationToken
}

// VerificationExpiry returns when the pending token stops being accepted.
func (u *User) VerificationExpiry() time.Time {
	return u.verificationExpiry
}

// AttachRestaurant links a Restaurant account to the restaurant it operates.
// Rejected for any other role.
func (u *User) AttachRestaurant(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	if u.role != Restaurant {
		return errs.NewValueIsInvalidError("only restaurant accounts can operate a restaurant")
	}

	u.restaurantID = &restaurantID
	return nil
}

// Block marks the account as blocked. Blocking is idempotent.
func (u *User) Block() {
	u.isBlocked = true
}

// Unblock clears the blocked flag. Unblocking is idempotent.
func (u *User) Unblock() {
	u.isBlocked = false
}

// MarkDeleted soft-deletes the account.
func (u *User) MarkDeleted() {
	u.isDeleted = true
}

// IssueVerificationToken stores a fresh email confirmation code with its expiry.
// Rejected when the account is already verified.
func (u *User) IssueVerificationToken(token string, expiry time.Time) error {
	if u.isVerified {
		return ErrUserAlreadyVerified
	}
	if token == "" {
		return errs.NewValueIsRequiredError("verification token")
	}

	u.verificationToken = token
	u.verificationExpiry = expiry
	return nil
}

// MarkVerified confirms the email address and clears any pending token.
func (u *User) MarkVerified() {
	u.isVerified = true
	u.verificationToken = ""
	u.verificationExpiry = time.Time{}
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
