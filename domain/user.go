// Package domain contains core concepts of the queue bot.
// This file defines User identities and the rules they must respect.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"fmt"
	"queue-bot/errors"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// UserID identifies a user. It is derived from the display name, so two users
// sharing a name share an identifier.
type UserID uint64

// User is the behaviour the dispatcher expects from a chat participant.
type User interface {
	ID() UserID
	// Mention renders how the chat platform pings the user, <@Name>.
	Mention() string
	// Tag renders how users share their account, Name#0001.
	Tag() string
	Name() string
	IsStaff() bool
}

// Member is the only User implementation. It is an immutable value.
type Member struct {
	id            UserID
	name          string
	discriminator string
	staff         bool
}

type memberRequest struct {
	Name          string `validate:"required,excludesall= "`
	Discriminator string `validate:"required,len=4,number"`
}

// NewMember builds a Member whose identifier is a hash of its name.
func NewMember(name, discriminator string, staff bool) (Member, error) {
	if err := validate.Struct(memberRequest{Name: name, Discriminator: discriminator}); err != nil {
		return Member{}, fmt.Errorf("%w: %w", errors.ErrInvalidUser, err)
	}
	return Member{
		id:            IDFromName(name),
		name:          name,
		discriminator: discriminator,
		staff:         staff,
	}, nil
}

// MustMember is NewMember for fixtures and scripted scenarios.
func MustMember(name, discriminator string, staff bool) Member {
	m, err := NewMember(name, discriminator, staff)
	if err != nil {
		panic(err)
	}
	return m
}

// IDFromName hashes a display name into a UserID.
func IDFromName(name string) UserID {
	return UserID(xxhash.Sum64String(name))
}

func (m Member) ID() UserID { return m.id }

func (m Member) Mention() string { return fmt.Sprintf("<@%s>", m.name) }

func (m Member) Tag() string { return fmt.Sprintf("%s#%s", m.name, m.discriminator) }

func (m Member) Name() string { return m.name }

func (m Member) IsStaff() bool { return m.staff }

func (m Member) String() string { return m.Tag() }

// IsNilUser reports whether u is nil or wraps a nil pointer, such as a nil *Member.
func IsNilUser(u User) bool {
	if u == nil {
		return true
	}
	v := reflect.ValueOf(u)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// SameUser compares users by identifier only.
func SameUser(a, b User) bool {
	if IsNilUser(a) || IsNilUser(b) {
		return false
	}
	return a.ID() == b.ID()
}
