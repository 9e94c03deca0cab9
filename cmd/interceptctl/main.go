// interceptctl - inspection tool for the interception layer
//
//	interceptctl devices              List input devices the driver sees
//	interceptctl journal [-db path]   Show recent journaled strokes
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"interceptd/internal/journal"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch cmd := os.Args[1]; cmd {
	case "devices":
		cmdDevices()
	case "journal":
		cmdJournal(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`interceptctl - inspect intercepted input devices and strokes

USAGE:
    interceptctl <command> [options]

COMMANDS:
    devices             List input devices (driver ids, classes, hardware ids)
    journal             Show recent strokes from the journal database
    help                Show this help message

JOURNAL OPTIONS:
    -db <path>          Journal database file (default "strokes.db")
    -n <count>          Number of entries to show (default 20)`)
}

func cmdJournal(args []string) {
	fs := flag.NewFlagSet("journal", flag.ExitOnError)
	dbPath := fs.String("db", "strokes.db", "journal database file")
	count := fs.Int("n", 20, "number of entries to show")
	fs.Parse(args)

	jnl, err := journal.Open(*dbPath)
	if err != nil {
		fatal(err)
	}
	defer jnl.Close()

	entries, err := jnl.Tail(*count)
	if err != nil {
		fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Time", "Device", "Class", "Event", "Detail"})
	for _, e := range entries {
		table.Append([]string{
			e.At.Format("15:04:05.000"),
			strconv.Itoa(int(e.Device)),
			e.Class,
			journalEvent(e),
			journalDetail(e),
		})
	}
	table.Render()
}

func journalEvent(e journal.Entry) string {
	if e.Class == "keyboard" {
		return fmt.Sprintf("code=0x%02X state=0x%02X", e.Code, e.State)
	}
	return fmt.Sprintf("state=0x%03X flags=0x%02X", e.State, e.Flags)
}

func journalDetail(e journal.Entry) string {
	if e.Class == "keyboard" {
		return fmt.Sprintf("info=%d", e.Information)
	}
	return fmt.Sprintf("x=%d y=%d rolling=%d", e.X, e.Y, e.Rolling)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "interceptctl: %v\n", err)
	os.Exit(1)
}
