package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"

	"github.com/tokenlabs/multitoken/common"
	"github.com/tokenlabs/multitoken/common/amount"
	"github.com/tokenlabs/multitoken/journal"
	"github.com/tokenlabs/multitoken/ledger"
)

var Replay = cli.Command{
	Action:    addPerformanceDiagnoses(replay),
	Name:      "replay",
	Usage:     "replays an operation script against a fresh ledger",
	ArgsUsage: "<script.jsonl>",
	Flags: []cli.Flag{
		&ownerFlag,
		&baseURIFlag,
		&journalFlag,
	},
}

var (
	ownerFlag = cli.StringFlag{
		Name:  "owner",
		Usage: "address holding the mint/burn authority",
		Value: "0x0000000000000000000000000000000000000001",
	}
	baseURIFlag = cli.StringFlag{
		Name:  "base-uri",
		Usage: "prefix for metadata URIs",
	}
	journalFlag = cli.StringFlag{
		Name:  "journal",
		Usage: "directory receiving the event journal",
	}
)

// operation is one line of a replay script. Besides the routing key op
// and the caller identity, only the fields of the targeted operation are
// read.
type operation struct {
	Op     string         `json:"op"`
	Caller common.Address `json:"caller"`

	From     common.Address   `json:"from"`
	To       common.Address   `json:"to"`
	Owner    common.Address   `json:"owner"`
	Holder   common.Address   `json:"holder"`
	Operator common.Address   `json:"operator"`
	ID       common.TokenID   `json:"id"`
	IDs      []common.TokenID `json:"ids"`
	Value    amount.Amount    `json:"value"`
	Values   []amount.Amount  `json:"values"`
	Supply   amount.Amount    `json:"supply"`
	URI      string           `json:"uri"`
	Approved bool             `json:"approved"`
}

func replay(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing script file")
	}

	var owner common.Address
	if err := owner.UnmarshalText([]byte(context.String(ownerFlag.Name))); err != nil {
		return err
	}

	opts := []ledger.Option{ledger.WithBaseURI(context.String(baseURIFlag.Name))}
	if dir := context.String(journalFlag.Name); dir != "" {
		store, err := journal.OpenLevelDbStore(dir)
		if err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
		sink, err := journal.Open(store)
		if err != nil {
			return err
		}
		defer func() {
			if err := sink.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "failed to close journal: %v\n", err)
			}
		}()
		opts = append(opts, ledger.WithAnnouncer(sink))
	}

	file, err := os.Open(context.Args().Get(0))
	if err != nil {
		return err
	}
	defer file.Close()

	l := ledger.New(owner, opts...)

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var op operation
		if err := json.Unmarshal(scanner.Bytes(), &op); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		output, err := dispatch(l, op)
		if err != nil {
			// The literal failure reason is the user-visible result.
			return fmt.Errorf("line %d: %s: %s", line, op.Op, err.Error())
		}
		if output != "" {
			fmt.Printf("line %d: %s\n", line, output)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	printBalances(l)
	return nil
}

// dispatch routes one script operation to the ledger, passing the
// script-declared caller identity through unchanged.
func dispatch(l *ledger.Ledger, op operation) (string, error) {
	switch op.Op {
	case "create":
		id, err := l.Create(op.Caller, op.Holder, op.Supply, op.URI)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("created asset %s", id), nil
	case "transfer":
		return "", l.SafeTransferFrom(op.Caller, op.From, op.To, op.ID, op.Value, nil)
	case "transferBatch":
		return "", l.SafeBatchTransferFrom(op.Caller, op.From, op.To, op.IDs, op.Values, nil)
	case "mint":
		return "", l.Mint(op.Caller, op.To, op.ID, op.Value, nil)
	case "mintBatch":
		return "", l.MintBatch(op.Caller, op.To, op.IDs, op.Values, nil)
	case "burn":
		return "", l.Burn(op.Caller, op.Owner, op.ID, op.Value)
	case "burnBatch":
		return "", l.BurnBatch(op.Caller, op.Owner, op.IDs, op.Values)
	case "approve":
		return "", l.SetApprovalForAll(op.Caller, op.Operator, op.Approved)
	case "balance":
		balance, err := l.BalanceOf(op.ID, op.Holder)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("balance(%s, %s) = %s", op.ID, op.Holder, balance), nil
	default:
		return "", fmt.Errorf("unknown operation %q", op.Op)
	}
}

func printBalances(l *ledger.Ledger) {
	balances := l.Balances()
	ids := maps.Keys(balances)
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Uint256().Lt(ids[j].Uint256())
	})
	for _, id := range ids {
		holders := maps.Keys(balances[id])
		sort.Slice(holders, func(i, j int) bool {
			return holders[i].String() < holders[j].String()
		})
		for _, holder := range holders {
			fmt.Printf("%s %s %s\n", id, holder, balances[id][holder])
		}
	}
}
