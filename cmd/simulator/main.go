package main

import (
	"context"
	"fmt"
	"os"
	"queue-bot/dispatcher"
	"queue-bot/domain"
	"queue-bot/sink"
	"queue-bot/transport"
	"time"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
)

// Config defines the simulator environment variables.
type Config struct {
	// SIMULATOR_COLOURS enables colorized output
	Colours bool   `envconfig:"SIMULATOR_COLOURS" default:"true"`
	Prefix  string `envconfig:"SIMULATOR_PREFIX" default:"!q"`
	// SIMULATOR_STAFF is the name of the staff member driving the session
	Staff    string `envconfig:"SIMULATOR_STAFF" default:"Ben"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"WARN"`
}

type step struct {
	author  domain.Member
	content string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Simulator error: %v\n", err)
		os.Exit(1)
	}
}

// run replays a typical office-hours session against the dispatcher,
// without any chat platform.
func run() error {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ta, err := domain.NewMember(config.Staff, "0001", true)
	if err != nil {
		return err
	}
	kapua := domain.MustMember("Kapua", "0002", false)
	bennett := domain.MustMember("Bennett", "0003", false)
	russ := domain.MustMember("Russ", "0004", false)
	jordan := domain.MustMember("Jordan", "0005", false)
	students := []domain.Member{kapua, bennett, russ, jordan}

	// Scripted members keep their discriminators, mentions are resolved like chat lines
	roster := transport.NewRoster(nil)
	for _, m := range append([]domain.Member{ta}, students...) {
		roster.Register(m)
	}
	parser := transport.NewParser(roster)

	command := func(name string) string { return config.Prefix + " " + name }

	steps := []step{{author: ta, content: command("ping")}}
	for _, s := range students {
		steps = append(steps, step{author: s, content: command("join")})
	}
	steps = append(steps,
		step{author: ta, content: command("list")},
		step{author: ta, content: command("leave")},
		step{author: russ, content: command("leave")},
		step{author: russ, content: command("pos")},
		step{author: jordan, content: command("position")},
		step{author: ta, content: command("list")},
		step{author: ta, content: command("next")},
		step{author: ta, content: command("clear")},
		step{author: russ, content: command("list")},
	)
	for _, s := range students {
		steps = append(steps, step{author: ta, content: command("add " + s.Mention())})
	}
	steps = append(steps,
		step{author: russ, content: command("list")},
		step{author: russ, content: command("next")},
		step{author: ta, content: command("remove " + russ.Mention())},
		step{author: kapua, content: command("list")},
	)

	d := dispatcher.NewDispatcher(log, config.Prefix)
	console := sink.NewConsoleSink(os.Stdout, config.Colours)
	ctx := context.Background()

	for _, s := range steps {
		printHeader(config.Colours, s.author, s.content)
		msg, err := parser.Parse(fmt.Sprintf("%s: %s", s.author.Name(), s.content))
		if err != nil {
			return err
		}
		reply, ok := d.Handle(msg)
		if !ok {
			log.Debug("Message ignored", "content", s.content)
			continue
		}
		if err := console.Consume(ctx, domain.NewOutbound(msg, reply, time.Now().UTC())); err != nil {
			return err
		}
		fmt.Println()
	}
	log.Info("Simulation finished", "queue_length", d.Len())
	return nil
}

func printHeader(colours bool, author domain.User, content string) {
	header := fmt.Sprintf("[%s]: %s", author.Name(), content)
	if colours {
		header = color.New(color.BgBlack, color.FgCyan).Render(header)
	}
	fmt.Println(header)
}
