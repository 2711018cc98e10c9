package repositories

import (
	"fmt"
	"log/slog"
	"queue-bot/domain"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

const transcriptPrefix = "reply:"

type ITranscriptRepository interface {
	StoreEntry(entry TranscriptEntry) error
	GetEntries(cursor *string) ([]TranscriptEntry, *string, error)
}

// TranscriptRepository keeps every reply delivered by the bot.
// It is an audit trail: the queue itself is never rebuilt from it.
type TranscriptRepository struct {
	db           *badger.DB
	log          *slog.Logger
	limitEntries *int
}

func NewTranscriptRepository(db *badger.DB, log *slog.Logger, limitEntries *int) TranscriptRepository {
	return TranscriptRepository{db: db, log: log, limitEntries: limitEntries}
}

type TranscriptEntry struct {
	ID       uuid.UUID
	Author   string
	Content  string
	Severity domain.Severity
	Reply    string
	At       time.Time
}

// record is the stored layout of an entry.
type record struct {
	ID       string `cbor:"1,keyasint"`
	Author   string `cbor:"2,keyasint"`
	Content  string `cbor:"3,keyasint"`
	Severity int    `cbor:"4,keyasint"`
	Reply    string `cbor:"5,keyasint"`
	At       int64  `cbor:"6,keyasint"`
}

// StoreEntry persists an entry under "reply:{timestamp_padded}:{uuid}" so that
// a prefix scan returns entries chronologically, the uuid breaking ties.
func (r TranscriptRepository) StoreEntry(entry TranscriptEntry) error {
	key := fmt.Sprintf("%s%019d:%s", transcriptPrefix, entry.At.UnixNano(), entry.ID)
	bytes, err := cbor.Marshal(fromEntry(entry))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetEntries returns entries oldest first, starting after cursor when given.
// It stops once limitEntries is reached and returns the cursor of the last entry read.
func (r TranscriptRepository) GetEntries(cursor *string) ([]TranscriptEntry, *string, error) {
	var entries []TranscriptEntry
	var lastKey string
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(transcriptPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		seekKey := prefix
		if cursor != nil {
			seekKey = append([]byte(transcriptPrefix), []byte(*cursor)...)
		}
		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()[len(prefix):]) == *cursor {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitEntries != nil && len(entries) == *r.limitEntries {
				r.log.Debug(fmt.Sprintf("Maximum of %d entries reached", *r.limitEntries))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])
			err := item.Value(func(value []byte) error {
				var rec record
				if err := cbor.Unmarshal(value, &rec); err != nil {
					return err
				}
				entry, err := toEntry(rec)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return entries, &lastKey, nil
}

// EntryFromOutbound maps a delivered reply to its transcript entry.
func EntryFromOutbound(out domain.Outbound) TranscriptEntry {
	return TranscriptEntry{
		ID:       out.ID,
		Author:   out.Author,
		Content:  out.Content,
		Severity: out.Reply.Severity,
		Reply:    out.Reply.String(),
		At:       out.At,
	}
}

func fromEntry(entry TranscriptEntry) record {
	return record{
		ID:       entry.ID.String(),
		Author:   entry.Author,
		Content:  entry.Content,
		Severity: int(entry.Severity),
		Reply:    entry.Reply,
		At:       entry.At.UnixNano(),
	}
}

func toEntry(rec record) (TranscriptEntry, error) {
	parsedID, err := uuid.Parse(rec.ID)
	if err != nil {
		return TranscriptEntry{}, err
	}
	return TranscriptEntry{
		ID:       parsedID,
		Author:   rec.Author,
		Content:  rec.Content,
		Severity: domain.Severity(rec.Severity),
		Reply:    rec.Reply,
		At:       time.Unix(0, rec.At).UTC(),
	}, nil
}
