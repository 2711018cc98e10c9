package dispatcher

import (
	"fmt"
	"queue-bot/domain"
	"strings"

	"github.com/samber/lo"
)

// Handlers run with the dispatcher lock held.

func (d *Dispatcher) ping(_ domain.User, _ []string, _ []domain.User) domain.Reply {
	return domain.Plain("Pong!")
}

func (d *Dispatcher) join(author domain.User, _ []string, _ []domain.User) domain.Reply {
	pos, err := d.queue.Push(author)
	if err != nil {
		return domain.Warn(fmt.Sprintf("%s You are already in the queue!", author.Mention()))
	}
	d.log.Debug("User joined the queue", "user", author.Tag(), "position", pos)
	return domain.Succeed(fmt.Sprintf("%s You have been added to the queue at position %d", author.Mention(), pos))
}

func (d *Dispatcher) leave(author domain.User, _ []string, _ []domain.User) domain.Reply {
	if err := d.queue.Remove(author); err != nil {
		return notInQueue(author)
	}
	d.log.Debug("User left the queue", "user", author.Tag())
	return domain.Succeed(fmt.Sprintf("%s You have been removed from the queue", author.Mention()))
}

func (d *Dispatcher) position(author domain.User, _ []string, _ []domain.User) domain.Reply {
	pos, err := d.queue.Position(author)
	if err != nil {
		return notInQueue(author)
	}
	return domain.Plain(fmt.Sprintf("%s You are at position %d", author.Mention(), pos))
}

func (d *Dispatcher) list(_ domain.User, _ []string, _ []domain.User) domain.Reply {
	tags := lo.Map(d.queue.Users(), func(item domain.User, _ int) string {
		return item.Tag()
	})
	return domain.Plain(fmt.Sprintf("Queue: [%s]", strings.Join(tags, ", ")))
}

func (d *Dispatcher) next(author domain.User, _ []string, _ []domain.User) domain.Reply {
	student, err := d.queue.Pop()
	if err != nil {
		return domain.Plain(fmt.Sprintf("%s There is no one in the queue", author.Mention()))
	}
	d.log.Debug("Next student popped", "staff", author.Tag(), "student", student.Tag())
	return domain.Plain(fmt.Sprintf("The next person in line is %s", student.Mention()))
}

func (d *Dispatcher) clear(author domain.User, _ []string, _ []domain.User) domain.Reply {
	d.queue.Clear()
	d.log.Debug("Queue cleared", "staff", author.Tag())
	return domain.Succeed(fmt.Sprintf("%s The queue has been cleared", author.Mention()))
}

func (d *Dispatcher) add(author domain.User, _ []string, mentions []domain.User) domain.Reply {
	student, reply, ok := singleMention(author, mentions)
	if !ok {
		return reply
	}
	if _, err := d.queue.Push(student); err != nil {
		return domain.Warn(fmt.Sprintf("%s That student is already in the queue!", author.Mention()))
	}
	return domain.Succeed(fmt.Sprintf("%s The student has been added to the queue!", author.Mention()))
}

func (d *Dispatcher) remove(author domain.User, _ []string, mentions []domain.User) domain.Reply {
	student, reply, ok := singleMention(author, mentions)
	if !ok {
		return reply
	}
	if err := d.queue.Remove(student); err != nil {
		return domain.Warn(fmt.Sprintf("%s The specified student is not in the queue!", author.Mention()))
	}
	return domain.Succeed(fmt.Sprintf("%s The student has been removed from the queue!", author.Mention()))
}

// singleMention extracts the only mentioned user, or the warning to send back.
func singleMention(author domain.User, mentions []domain.User) (domain.User, domain.Reply, bool) {
	mentions = lo.Reject(mentions, func(item domain.User, _ int) bool {
		return domain.IsNilUser(item)
	})
	switch len(mentions) {
	case 0:
		return nil, domain.Warn(fmt.Sprintf("%s You must `@mention` a user!", author.Mention())), false
	case 1:
		return mentions[0], domain.Reply{}, true
	default:
		return nil, domain.Warn(fmt.Sprintf("%s You must mention a single user!", author.Mention())), false
	}
}

func notInQueue(author domain.User) domain.Reply {
	return domain.Warn(fmt.Sprintf("%s You are not in the queue!", author.Mention()))
}
