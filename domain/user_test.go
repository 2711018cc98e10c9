package domain

import (
	"queue-bot/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMember_Renders(t *testing.T) {
	req := require.New(t)
	ben, err := NewMember("Ben", "0001", true)
	req.NoError(err)

	req.Equal("<@Ben>", ben.Mention())
	req.Equal("Ben#0001", ben.Tag())
	req.Equal("Ben", ben.Name())
	req.True(ben.IsStaff())
	req.Equal(IDFromName("Ben"), ben.ID())
}

func TestNewMember_Validation(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		discriminator string
	}{
		{name: "Empty name", userName: "", discriminator: "0001"},
		{name: "Name with space", userName: "Ben P", discriminator: "0001"},
		{name: "Short discriminator", userName: "Ben", discriminator: "01"},
		{name: "Non numeric discriminator", userName: "Ben", discriminator: "00a1"},
		{name: "Signed discriminator", userName: "Ben", discriminator: "-001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMember(tt.userName, tt.discriminator, false)
			require.ErrorIs(t, err, errors.ErrInvalidUser)
		})
	}
}

// Equality only looks at the identifier, so the same name with another tag
// or staff flag is the same user.
func TestSameUser_ByIdentifierOnly(t *testing.T) {
	req := require.New(t)
	a := MustMember("Jordan", "0003", false)
	b := MustMember("Jordan", "0042", true)
	c := MustMember("Bennett", "0003", false)

	req.True(SameUser(a, b))
	req.False(SameUser(a, c))
	req.False(SameUser(a, nil))
	req.True(SameUser(a, &a))
	req.False(SameUser((*Member)(nil), a))
}

func TestIsNilUser(t *testing.T) {
	req := require.New(t)
	m := MustMember("Jordan", "0003", false)

	req.True(IsNilUser(nil))
	req.True(IsNilUser((*Member)(nil)))
	req.False(IsNilUser(m))
	req.False(IsNilUser(&m))
}
