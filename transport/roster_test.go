package transport

import (
	"queue-bot/domain"
	"queue-bot/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoster_Lookup(t *testing.T) {
	req := require.New(t)
	roster := NewRoster([]string{"Ben"})

	ben, err := roster.Lookup("Ben")
	req.NoError(err)
	req.True(ben.IsStaff())
	req.Len(ben.Tag(), len("Ben#0000"))

	again, err := roster.Lookup("Ben")
	req.NoError(err)
	req.Equal(ben, again)

	kapua, err := roster.Lookup("Kapua")
	req.NoError(err)
	req.False(kapua.IsStaff())
	req.Equal(2, roster.Len())
}

func TestRoster_LookupInvalidName(t *testing.T) {
	req := require.New(t)
	roster := NewRoster(nil)

	_, err := roster.Lookup("")
	req.ErrorIs(err, errors.ErrInvalidUser)
	req.Equal(0, roster.Len())
}

func TestRoster_Register(t *testing.T) {
	req := require.New(t)
	roster := NewRoster(nil)
	jordan := domain.MustMember("Jordan", "0003", false)
	roster.Register(jordan)

	found, err := roster.Lookup("Jordan")
	req.NoError(err)
	req.Equal("Jordan#0003", found.Tag())
}
