package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"queue-bot/repositories"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "", "Path to the transcript badger DB")
	limit := flag.Int("limit", 0, "Maximum number of entries to display, 0 for all")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("Missing -db flag")
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	var limitEntries *int
	if *limit > 0 {
		limitEntries = limit
	}
	repository := repositories.NewTranscriptRepository(db, logs.GetLoggerFromString("WARN"), limitEntries)
	entries, _, err := repository.GetEntries(nil)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Time", "ID", "Author", "Command", "Severity", "Reply"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, entry := range entries {
		// The first 8 characters of the ID are enough to tell entries apart
		displayID := entry.ID.String()[:8]
		table.Append([]string{
			entry.At.Format("15:04:05"),
			displayID,
			entry.Author,
			entry.Content,
			entry.Severity.String(),
			entry.Reply,
		})
	}
	table.Render()
	fmt.Printf("%d entries\n", len(entries))
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && strings.Contains(err.Error(), "Log truncate required") {
		return nil, fmt.Errorf("transcript needs recovery, open it once with the bot: %w", err)
	}
	return db, err
}
