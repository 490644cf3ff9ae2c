// Package roster is the in-memory directory of salespeople.
//
// Users are added and removed, never updated. Master users cannot be removed.
// Every mutation swaps the backing slice for a new one, so a List taken before
// a mutation keeps its contents.
package roster

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrProtectedUser  = errors.New("master users cannot be removed")
	ErrUserNotFound   = errors.New("user not found")
)

// Tier is a user's privilege level.
type Tier string

const (
	TierMaster   Tier = "master"
	TierStandard Tier = "standard"
)

// Label is the name operators see for the tier.
func (t Tier) Label() string {
	if t == TierMaster {
		return "Master"
	}
	return "Padrão"
}

// ParseTier accepts "master", "standard" and the console's own "padrao".
// Anything else, including "", is TierStandard.
func ParseTier(s string) Tier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "master":
		return TierMaster
	default:
		return TierStandard
	}
}

// User is a salesperson known to the console.
type User struct {
	ID    string
	Name  string
	Email string
	Phone string
	Tier  Tier
}

// Candidate is the input to Add. A zero Tier means TierStandard.
type Candidate struct {
	Name  string
	Email string
	Phone string
	Tier  Tier
}

// Directory holds the roster in insertion order. It is not safe for
// concurrent use; the console touches it only from its update loop.
type Directory struct {
	users []User
	newID func() string
}

// New builds a directory from seed users. The seed must have unique, non-empty
// ids and emails and exactly one master.
func New(seed []User) (*Directory, error) {
	if err := validateSeed(seed); err != nil {
		return nil, err
	}
	return &Directory{
		users: slices.Clone(seed),
		newID: func() string { return "user-" + uuid.NewString() },
	}, nil
}

// List returns the users in insertion order.
func (d *Directory) List() []User {
	return slices.Clone(d.users)
}

// Len returns the number of users.
func (d *Directory) Len() int { return len(d.users) }

// Get looks a user up by id.
func (d *Directory) Get(id string) (User, bool) {
	i := d.index(id)
	if i < 0 {
		return User{}, false
	}
	return d.users[i], true
}

// Add appends a user built from c. It fails without changing the directory
// when a required field is blank or the email is already taken (exact match).
func (d *Directory) Add(c Candidate) (User, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	if missing := missingFields(c); len(missing) > 0 {
		return User{}, fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}
	if d.hasEmail(c.Email) {
		return User{}, fmt.Errorf("%w: %s", ErrDuplicateEmail, c.Email)
	}
	if c.Tier == "" {
		c.Tier = TierStandard
	}

	u := User{
		ID:    d.newID(),
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
		Tier:  c.Tier,
	}
	next := make([]User, 0, len(d.users)+1)
	next = append(next, d.users...)
	d.users = append(next, u)
	return u, nil
}

// Remove deletes the user with id. Masters are rejected with ErrProtectedUser.
func (d *Directory) Remove(id string) error {
	i := d.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	if d.users[i].Tier == TierMaster {
		return fmt.Errorf("%w: %s", ErrProtectedUser, d.users[i].Name)
	}
	next := make([]User, 0, len(d.users)-1)
	next = append(next, d.users[:i]...)
	d.users = append(next, d.users[i+1:]...)
	return nil
}

func (d *Directory) index(id string) int {
	return slices.IndexFunc(d.users, func(u User) bool { return u.ID == id })
}

func (d *Directory) hasEmail(email string) bool {
	return slices.ContainsFunc(d.users, func(u User) bool { return u.Email == email })
}

func missingFields(c Candidate) []string {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Email == "" {
		missing = append(missing, "email")
	}
	if c.Phone == "" {
		missing = append(missing, "phone")
	}
	return missing
}

func validateSeed(seed []User) error {
	ids := make(map[string]bool, len(seed))
	emails := make(map[string]bool, len(seed))
	masters := 0
	for _, u := range seed {
		if u.ID == "" || u.Email == "" {
			return fmt.Errorf("%w: seed user %q needs an id and an email", ErrValidation, u.Name)
		}
		if ids[u.ID] {
			return fmt.Errorf("%w: duplicate seed id %s", ErrValidation, u.ID)
		}
		if emails[u.Email] {
			return fmt.Errorf("%w: %s", ErrDuplicateEmail, u.Email)
		}
		ids[u.ID] = true
		emails[u.Email] = true
		if u.Tier == TierMaster {
			masters++
		}
	}
	if masters != 1 {
		return fmt.Errorf("%w: seed must have exactly one master, got %d", ErrValidation, masters)
	}
	return nil
}
