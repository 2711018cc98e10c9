package sink

import (
	"context"
	"log/slog"
	"queue-bot/domain"
	"queue-bot/repositories"
)

type TranscriptSink struct {
	repository repositories.ITranscriptRepository
	log        *slog.Logger
}

func NewTranscriptSink(repository repositories.ITranscriptRepository, log *slog.Logger) TranscriptSink {
	return TranscriptSink{repository: repository, log: log}
}

func (t TranscriptSink) Consume(ctx context.Context, out domain.Outbound) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.log.Debug("Storing reply", "id", out.ID, "author", out.Author)
	return t.repository.StoreEntry(repositories.EntryFromOutbound(out))
}
