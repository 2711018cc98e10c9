package domain

import (
	"queue-bot/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	alice = MustMember("Alice", "0001", false)
	bob   = MustMember("Bob", "0002", false)
	clara = MustMember("Clara", "0003", false)
)

func TestQueue_PushReportsPosition(t *testing.T) {
	req := require.New(t)
	q := NewQueue()

	pos, err := q.Push(alice)
	req.NoError(err)
	req.Equal(1, pos)

	pos, err = q.Push(bob)
	req.NoError(err)
	req.Equal(2, pos)
}

func TestQueue_NoDuplicates(t *testing.T) {
	req := require.New(t)
	q := NewQueue()

	_, err := q.Push(alice)
	req.NoError(err)
	_, err = q.Push(MustMember("Alice", "9999", true))
	req.ErrorIs(err, errors.ErrAlreadyQueued)
	req.Equal(1, q.Len())
}

func TestQueue_PopIsFIFO(t *testing.T) {
	req := require.New(t)
	q := NewQueue()
	for _, u := range []User{alice, bob, clara} {
		_, err := q.Push(u)
		req.NoError(err)
	}

	for i, expected := range []User{alice, bob, clara} {
		popped, err := q.Pop()
		req.NoError(err)
		req.True(SameUser(expected, popped))
		req.Equal(2-i, q.Len())
	}

	_, err := q.Pop()
	req.ErrorIs(err, errors.ErrQueueEmpty)
}

func TestQueue_RemoveKeepsOrder(t *testing.T) {
	req := require.New(t)
	q := NewQueue()
	for _, u := range []User{alice, bob, clara} {
		_, err := q.Push(u)
		req.NoError(err)
	}

	req.NoError(q.Remove(bob))
	req.ErrorIs(q.Remove(bob), errors.ErrNotQueued)

	users := q.Users()
	req.Len(users, 2)
	req.True(SameUser(alice, users[0]))
	req.True(SameUser(clara, users[1]))

	pos, err := q.Position(clara)
	req.NoError(err)
	req.Equal(2, pos)
}

func TestQueue_PositionOfAbsentUser(t *testing.T) {
	req := require.New(t)
	q := NewQueue()
	_, err := q.Position(alice)
	req.ErrorIs(err, errors.ErrNotQueued)
}

func TestQueue_Clear(t *testing.T) {
	req := require.New(t)
	q := NewQueue()
	_, _ = q.Push(alice)
	_, _ = q.Push(bob)

	q.Clear()
	req.Equal(0, q.Len())
	req.False(q.Contains(alice))

	pos, err := q.Push(alice)
	req.NoError(err)
	req.Equal(1, pos)
}

// Users hands out a copy: mutating it must not reach the queue.
func TestQueue_UsersIsACopy(t *testing.T) {
	req := require.New(t)
	q := NewQueue()
	_, _ = q.Push(alice)

	users := q.Users()
	users[0] = bob

	req.True(q.Contains(alice))
	req.False(q.Contains(bob))
}

func TestQueue_StoresValueOfPointerUsers(t *testing.T) {
	req := require.New(t)
	q := NewQueue()
	member := MustMember("Dora", "0004", false)

	_, err := q.Push(&member)
	req.NoError(err)

	_, isPointer := q.Users()[0].(*Member)
	req.False(isPointer)
}

func TestQueue_RejectsNilUser(t *testing.T) {
	req := require.New(t)
	q := NewQueue()

	_, err := q.Push(nil)
	req.ErrorIs(err, errors.ErrInvalidUser)
	_, err = q.Push((*Member)(nil))
	req.ErrorIs(err, errors.ErrInvalidUser)
	req.Equal(0, q.Len())
	req.False(q.Contains((*Member)(nil)))
}
