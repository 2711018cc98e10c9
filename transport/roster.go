// Package transport adapts raw chat lines to domain messages.
// It provisions users and extracts mentions; the dispatcher never sees raw mention tokens.
package transport

import (
	"fmt"
	"queue-bot/domain"
	"sync"

	"github.com/samber/lo"
)

// Roster creates users on first sight and remembers them.
// Names listed as staff get the staff flag.
type Roster struct {
	mu      sync.Mutex
	staff   map[string]struct{}
	members map[string]domain.Member
}

func NewRoster(staff []string) *Roster {
	return &Roster{
		staff:   lo.SliceToMap(staff, func(name string) (string, struct{}) { return name, struct{}{} }),
		members: make(map[string]domain.Member),
	}
}

// Lookup returns the member registered under name, creating it if needed.
// The discriminator is derived from the identifier so it is stable across runs.
func (r *Roster) Lookup(name string) (domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.members[name]; ok {
		return m, nil
	}
	_, staff := r.staff[name]
	discriminator := fmt.Sprintf("%04d", uint64(domain.IDFromName(name))%10000)
	m, err := domain.NewMember(name, discriminator, staff)
	if err != nil {
		return domain.Member{}, err
	}
	r.members[name] = m
	return m, nil
}

// Register adds a member built elsewhere, replacing any previous one with that name.
func (r *Roster) Register(m domain.Member) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[m.Name()] = m
}

func (r *Roster) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}
