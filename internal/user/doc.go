// Package user is the example target used by the validation CLI: a User
// built through a mutable Builder whose setters are bound to validated
// fields.
package user
