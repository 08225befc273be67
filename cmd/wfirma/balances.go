package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/mtlab/wfirma-go/pkg/wfirma"
)

var balancesHistory string

var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "Snapshot company account balances",
	Long: `Fetches the company accounts, records a balance snapshot in the
local database and prints the latest state per account. --history shows
past snapshots of one account instead.`,
	RunE: runBalances,
}

func init() {
	balancesCmd.Flags().StringVar(&balancesHistory, "history", "", "Print snapshot history for this account id")
	rootCmd.AddCommand(balancesCmd)
}

func runBalances(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger()
	ctx := cmd.Context()

	storeOptions := []wfirma.Option[*wfirma.BalanceStore]{
		wfirma.BalanceStoreWithDSN(cfg.Storage.DSN),
		wfirma.BalanceStoreWithLogger(logger),
	}
	if cfg.Storage.Driver != "" {
		storeOptions = append(storeOptions, wfirma.BalanceStoreWithDriver(cfg.Storage.Driver))
	}
	if cfg.Storage.Table != "" {
		storeOptions = append(storeOptions, wfirma.BalanceStoreWithTable(cfg.Storage.Table))
	}
	store := wfirma.NewBalanceStore(storeOptions...)
	defer store.Close()

	if err := store.Init(ctx); err != nil {
		return err
	}

	if balancesHistory != "" {
		rows, err := store.History(ctx, balancesHistory, 0)
		if err != nil {
			return err
		}
		printBalances(fmt.Sprintf("History of account %s", balancesHistory), rows)
		return nil
	}

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	doc, err := client.CompanyAccounts.Find(ctx)
	if err != nil {
		return fmt.Errorf("fetch company accounts: %w", err)
	}
	balances := wfirma.BalancesFromAccounts(doc)
	if err := store.Record(ctx, balances); err != nil {
		return err
	}

	latest, err := store.Latest(ctx)
	if err != nil {
		return err
	}
	printBalances("Latest balances", latest)
	return nil
}

func printBalances(title string, rows []wfirma.Balance) {
	fmt.Printf("%s:\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ACCOUNT\tNAME\tBALANCE\tCURRENCY\tRECORDED")
	for _, b := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			b.AccountID, b.Name, wfirma.FormatCurrency(b.Balance), b.Currency,
			b.RecordedAt.Format("2006-01-02 15:04:05"),
		)
	}
	w.Flush()
}
