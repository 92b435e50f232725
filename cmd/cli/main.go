package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	log "github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

var usage = `Commands:
  create <` + currencies() + `> <owner name>
  deposit <account_id> <amount>
  withdraw <account_id> <amount>
  transfer <from_id> <to_id> <amount>
  balance <account_id>
  status <account_id> <ACTIVE|BLOCKED|CLOSED>
  owner <account_id> <owner name>
  close <account_id>
  list
  history <account_id> [DEPOSIT|WITHDRAWAL|TRANSFER]
  quit`

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("failed to load configuration", "error", err)
	}
	// Keep the session output readable; the ledger logs to stdout otherwise.
	cfg.Log.Level = int(log.ErrorLevel)

	ctx := context.Background()
	app, err := initializer.InitializeApp(ctx, cfg)
	if err != nil {
		log.Fatal("failed to initialize ledger", "error", err)
	}
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		color.New(color.Bold).Println("In-memory ledger session. Type 'help' for commands.")
	}
	if err := session(ctx, app.AccountService, os.Stdin, os.Stdout, interactive); err != nil {
		log.Fatal(err)
	}
}

func currencies() string {
	codes := money.Supported()
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = c.String()
	}
	return strings.Join(names, "|")
}

var errorf = color.New(color.FgRed).FprintfFunc()

// session executes one command per input line until EOF or quit. The prompt
// is only printed when prompt is set.
func session(ctx context.Context, svc *accountsvc.Service, in io.Reader, out io.Writer, prompt bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if err := execute(ctx, svc, fields, out); err != nil {
			errorf(out, "Error: %v\n", err)
		}
	}
}

func execute(ctx context.Context, svc *accountsvc.Service, args []string, out io.Writer) error {
	cmd, args := args[0], args[1:]
	switch cmd {
	case "help":
		fmt.Fprintln(out, usage)
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("usage: create <%s> <owner name>", currencies())
		}
		acc, err := svc.CreateAccount(ctx, strings.Join(args[1:], " "), money.Code(strings.ToUpper(args[0])))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Account created: ID=%d, Number=%s, Currency=%s\n", acc.ID, acc.AccountNumber, acc.Currency)
	case "deposit", "withdraw":
		if len(args) != 2 {
			return fmt.Errorf("usage: %s <account_id> <amount>", cmd)
		}
		id, amount, err := idAndAmount(args[0], args[1])
		if err != nil {
			return err
		}
		op := svc.Deposit
		if cmd == "withdraw" {
			op = svc.Withdraw
		}
		tx, err := op(ctx, id, amount, "")
		if err != nil {
			return err
		}
		return printBalance(ctx, svc, out, id, fmt.Sprintf("Transaction %d (%s %s)", tx.ID, tx.Type, money.Format(tx.Amount)))
	case "transfer":
		if len(args) != 3 {
			return fmt.Errorf("usage: transfer <from_id> <to_id> <amount>")
		}
		from, err := parseID(args[0])
		if err != nil {
			return err
		}
		to, amount, err := idAndAmount(args[1], args[2])
		if err != nil {
			return err
		}
		tx, err := svc.Transfer(ctx, from, to, amount, "")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Transaction %d: moved %s from %d to %d\n", tx.ID, money.Format(tx.Amount), from, to)
	case "balance":
		if len(args) != 1 {
			return fmt.Errorf("usage: balance <account_id>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return printBalance(ctx, svc, out, id, "")
	case "status":
		if len(args) != 2 {
			return fmt.Errorf("usage: status <account_id> <ACTIVE|BLOCKED|CLOSED>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		status, err := account.ParseStatus(strings.ToUpper(args[1]))
		if err != nil {
			return err
		}
		acc, err := svc.UpdateAccountStatus(ctx, id, status)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Account %d is %s\n", acc.ID, acc.Status)
	case "owner":
		if len(args) < 2 {
			return fmt.Errorf("usage: owner <account_id> <owner name>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		acc, err := svc.UpdateAccountOwner(ctx, id, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Account %d owner: %s\n", acc.ID, acc.OwnerName)
	case "close":
		if len(args) != 1 {
			return fmt.Errorf("usage: close <account_id>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := svc.DeleteAccount(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(out, "Account %d closed\n", id)
	case "list":
		accounts, err := svc.GetAllAccounts(ctx)
		if err != nil {
			return err
		}
		for _, acc := range accounts {
			fmt.Fprintf(out, "%d\t%s\t%s %s\t%s\t%s\n",
				acc.ID, acc.AccountNumber, money.Display(acc.Balance, acc.Currency), acc.Currency, acc.Status, acc.OwnerName)
		}
	case "history":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("usage: history <account_id> [type]")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var txs []*account.Transaction
		if len(args) == 2 {
			txType, perr := account.ParseTransactionType(strings.ToUpper(args[1]))
			if perr != nil {
				return perr
			}
			txs, err = svc.GetAccountTransactionsByType(ctx, id, txType)
		} else {
			txs, err = svc.GetAccountTransactions(ctx, id)
		}
		if err != nil {
			return err
		}
		for _, tx := range txs {
			fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", tx.ID, tx.Type, money.Format(tx.Amount), tx.Description)
		}
	default:
		return fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid account id %q", raw)
	}
	return id, nil
}

func idAndAmount(rawID, rawAmount string) (int64, decimal.Decimal, error) {
	id, err := parseID(rawID)
	if err != nil {
		return 0, decimal.Zero, err
	}
	amount, err := money.ParseAmount(rawAmount)
	if err != nil {
		return 0, decimal.Zero, err
	}
	return id, amount, nil
}

func printBalance(ctx context.Context, svc *accountsvc.Service, out io.Writer, id int64, prefix string) error {
	balance, err := svc.GetBalance(ctx, id)
	if err != nil {
		return err
	}
	if prefix != "" {
		fmt.Fprintf(out, "%s. ", prefix)
	}
	fmt.Fprintf(out, "Account %d balance: %s\n", id, money.Format(balance))
	return nil
}
