package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tokenlabs/multitoken/journal"
	"github.com/tokenlabs/multitoken/ledger"
)

var Dump = cli.Command{
	Action:    addPerformanceDiagnoses(dump),
	Name:      "dump",
	Usage:     "prints the records of an event journal in order",
	ArgsUsage: "<journal-dir>",
}

func dump(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing journal directory")
	}

	store, err := journal.OpenLevelDbStore(context.Args().Get(0))
	if err != nil {
		return err
	}

	events, err := journal.Events(store)
	for i, event := range events {
		fmt.Printf("%6d: %s\n", i, formatEvent(event))
	}
	return errors.Join(err, store.Close())
}

func formatEvent(event ledger.Event) string {
	switch event := event.(type) {
	case ledger.TransferSingle:
		return fmt.Sprintf("TransferSingle operator=%s from=%s to=%s id=%s value=%s",
			event.Operator, event.From, event.To, event.ID, event.Value)
	case ledger.TransferBatch:
		return fmt.Sprintf("TransferBatch operator=%s from=%s to=%s ids=%v values=%v",
			event.Operator, event.From, event.To, event.IDs, event.Values)
	case ledger.ApprovalForAll:
		return fmt.Sprintf("ApprovalForAll owner=%s operator=%s approved=%t",
			event.Owner, event.Operator, event.Approved)
	case ledger.URI:
		return fmt.Sprintf("URI id=%s value=%q", event.ID, event.Value)
	default:
		return fmt.Sprintf("unknown event %T", event)
	}
}
