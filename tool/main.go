// The multitoken tool drives a ledger from the command line: it replays
// operation scripts and inspects event journals.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pbnjay/memory"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "multitoken",
		Usage:     "multi-token balance ledger tool",
		Copyright: "(c) 2026 Tokenlabs",
		Commands: []*cli.Command{
			&Replay,
			&Dump,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// addPerformanceDiagnoses wraps a command action with a report of elapsed
// time and the hosting system's memory.
func addPerformanceDiagnoses(action cli.ActionFunc) cli.ActionFunc {
	return func(context *cli.Context) error {
		start := time.Now()
		err := action(context)
		fmt.Printf("elapsed time: %v, system memory: %d MiB\n",
			time.Since(start).Round(time.Millisecond),
			memory.TotalMemory()>>20,
		)
		return err
	}
}
