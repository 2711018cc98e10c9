package domain

import (
	"queue-bot/errors"

	"github.com/samber/lo"
)

// Queue is the ordered, duplicate-free list of waiting users.
// It is not safe for concurrent use; the dispatcher serializes access.
type Queue struct {
	users []User
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends the user at the back and returns its 1-based position.
func (q *Queue) Push(user User) (int, error) {
	if IsNilUser(user) {
		return 0, errors.ErrInvalidUser
	}
	if q.Contains(user) {
		return 0, errors.ErrAlreadyQueued
	}
	q.users = append(q.users, snapshot(user))
	return len(q.users), nil
}

// Pop removes and returns the user at the front.
func (q *Queue) Pop() (User, error) {
	if len(q.users) == 0 {
		return nil, errors.ErrQueueEmpty
	}
	front := q.users[0]
	q.users[0] = nil
	q.users = q.users[1:]
	return front, nil
}

// Remove deletes the user wherever it stands, keeping the relative order of the rest.
func (q *Queue) Remove(user User) error {
	i := q.indexOf(user)
	if i < 0 {
		return errors.ErrNotQueued
	}
	q.users = append(q.users[:i:i], q.users[i+1:]...)
	return nil
}

// Position returns the 1-based position of the user.
func (q *Queue) Position(user User) (int, error) {
	i := q.indexOf(user)
	if i < 0 {
		return 0, errors.ErrNotQueued
	}
	return i + 1, nil
}

func (q *Queue) Contains(user User) bool {
	return lo.ContainsBy(q.users, func(item User) bool {
		return SameUser(item, user)
	})
}

func (q *Queue) Clear() {
	q.users = nil
}

func (q *Queue) Len() int {
	return len(q.users)
}

// Users returns a copy of the queue, front first.
func (q *Queue) Users() []User {
	return append([]User(nil), q.users...)
}

func (q *Queue) indexOf(user User) int {
	_, i, ok := lo.FindIndexOf(q.users, func(item User) bool {
		return SameUser(item, user)
	})
	if !ok {
		return -1
	}
	return i
}

// snapshot detaches the stored value from the caller's one.
func snapshot(user User) User {
	if m, ok := user.(*Member); ok && m != nil {
		return *m
	}
	return user
}
