package user

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/validation/pkg/convert"
)

// User is an immutable person record.
type User struct {
	firstName string
	lastName  string
	email     convert.Email
}

// FirstName returns the user's first name.
func (u User) FirstName() string { return u.firstName }

// LastName returns the user's last name.
func (u User) LastName() string { return u.lastName }

// Email returns the user's e-mail address.
func (u User) Email() convert.Email { return u.email }

func (u User) String() string {
	return render("User", u.firstName, u.lastName, u.email)
}

// Builder accumulates User fields. Setters mutate the builder in place and
// return it so they can be used as validator mutators.
type Builder struct {
	firstName string
	lastName  string
	email     convert.Email
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// FirstName sets the first name.
func (b *Builder) FirstName(v string) *Builder {
	b.firstName = v
	return b
}

// LastName sets the last name.
func (b *Builder) LastName(v string) *Builder {
	b.lastName = v
	return b
}

// Email sets the e-mail address.
func (b *Builder) Email(v convert.Email) *Builder {
	b.email = v
	return b
}

// Build returns a User holding the current field values.
func (b *Builder) Build() User {
	return User{
		firstName: b.firstName,
		lastName:  b.lastName,
		email:     b.email,
	}
}

func (b *Builder) String() string {
	return render("UserBuilder", b.firstName, b.lastName, b.email)
}

func render(kind, firstName, lastName string, email convert.Email) string {
	var sb strings.Builder
	sb.WriteString(kind)
	fmt.Fprintf(&sb, "{firstName='%s', lastName='%s'", firstName, lastName)
	if email.Address() != "" {
		fmt.Fprintf(&sb, ", email=Email{address='%s'}", email.Address())
	} else {
		sb.WriteString(", email=null")
	}
	sb.WriteString("}")
	return sb.String()
}
