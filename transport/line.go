package transport

import (
	"fmt"
	"queue-bot/domain"
	"queue-bot/errors"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var mentionPattern = regexp.MustCompile(`<@([^<>\s]+)>`)

// Parser turns "<Name>: <content>" lines into messages.
type Parser struct {
	roster *Roster
}

func NewParser(roster *Roster) Parser {
	return Parser{roster: roster}
}

// Parse resolves the author and every <@Name> mention through the roster.
// Mentions keep their order of appearance, duplicates removed.
func (p Parser) Parse(line string) (domain.Message, error) {
	name, content, ok := strings.Cut(line, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return domain.Message{}, fmt.Errorf("%w: expected \"<name>: <message>\", got %q", errors.ErrUnknownUser, line)
	}
	author, err := p.roster.Lookup(name)
	if err != nil {
		return domain.Message{}, err
	}

	var mentions []domain.User
	for _, match := range mentionPattern.FindAllStringSubmatch(content, -1) {
		m, err := p.roster.Lookup(match[1])
		if err != nil {
			return domain.Message{}, err
		}
		mentions = append(mentions, m)
	}
	mentions = lo.UniqBy(mentions, func(item domain.User) domain.UserID {
		return item.ID()
	})
	return domain.NewMessage(author, strings.TrimSpace(content), mentions...), nil
}
