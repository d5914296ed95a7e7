package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/rogersnm/labkit/internal/markdown"
	"github.com/rogersnm/labkit/internal/model"
	"github.com/rogersnm/labkit/internal/prompt"
	"github.com/rogersnm/labkit/internal/tracker"
	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Track income and expenses (interactive menu without a subcommand)",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := &budgetMenu{p: newPrompter(cmd), out: cmd.OutOrStdout(), b: openBudget()}
		return m.loop()
	},
}

var budgetAddCmd = &cobra.Command{
	Use:   "add <description> <amount>",
	Short: "Record a transaction",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := model.ParseAmount(args[1])
		if err != nil {
			return err
		}
		typ, _ := cmd.Flags().GetString("type")
		category, _ := cmd.Flags().GetString("category")
		tx, err := openBudget().Add(args[0], amount, typ, category)
		if tx == nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added: %s\n", tx)
		return err
	},
}

var budgetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		b := openBudget()
		txs := b.List()
		if category, _ := cmd.Flags().GetString("category"); category != "" {
			txs = b.ByCategory(category)
		}
		printTransactions(cmd.OutOrStdout(), txs)
		return nil
	},
}

var budgetBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show income minus expenses",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "Current balance: %s\n", openBudget().Balance().StringFixed(2))
		return nil
	},
}

var budgetSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search transaction descriptions and categories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		found := openBudget().Search(args[0])
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Found %d transaction(s):\n", len(found))
		printTransactions(out, found)
		return nil
	},
}

func openBudget() *tracker.Budget {
	return tracker.OpenBudget(cfg.BudgetPath(dataDir), logger)
}

func printTransactions(out io.Writer, txs []*model.Transaction) {
	if isTerminal(out) {
		fmt.Fprintln(out, markdown.RenderTransactionTable(txs))
		return
	}
	if len(txs) == 0 {
		fmt.Fprintln(out, "No transactions found.")
		return
	}
	for _, tx := range txs {
		fmt.Fprintln(out, tx)
	}
}

var budgetMenuOptions = []prompt.Option{
	{Label: "Add transaction", Value: "add"},
	{Label: "Show balance", Value: "balance"},
	{Label: "Show all transactions", Value: "list"},
	{Label: "Show transactions by category", Value: "category"},
	{Label: "Search transactions", Value: "search"},
	{Label: "Save and exit", Value: "exit"},
}

type budgetMenu struct {
	p   prompt.Prompter
	out io.Writer
	b   *tracker.Budget
}

func (m *budgetMenu) loop() error {
	for {
		fmt.Fprintln(m.out)
		choice, err := m.p.Select("Menu:", budgetMenuOptions)
		if err == nil {
			if choice == "exit" {
				break
			}
			err = m.run(choice)
		}
		if errors.Is(err, prompt.ErrAborted) {
			break
		}
		if err != nil {
			return err
		}
	}
	if err := m.b.Save(); err != nil {
		reportSave(m.out, err)
		return nil
	}
	fmt.Fprintln(m.out, "Data saved. Goodbye!")
	return nil
}

func (m *budgetMenu) run(choice string) error {
	switch choice {
	case "add":
		return m.add()
	case "balance":
		fmt.Fprintf(m.out, "Current balance: %s\n", m.b.Balance().StringFixed(2))
	case "list":
		fmt.Fprintln(m.out, "All transactions:")
		printTransactions(m.out, m.b.List())
	case "category":
		category, err := m.p.Input("Category", nil)
		if err != nil {
			return err
		}
		if category == "" {
			fmt.Fprintln(m.out, "Category cannot be empty.")
			return nil
		}
		fmt.Fprintf(m.out, "Transactions in category '%s':\n", category)
		printTransactions(m.out, m.b.ByCategory(category))
	case "search":
		query, err := m.p.Input("Search query (description or category)", nil)
		if err != nil {
			return err
		}
		if query == "" {
			fmt.Fprintln(m.out, "Empty query.")
			return nil
		}
		found := m.b.Search(query)
		fmt.Fprintf(m.out, "Found %d transaction(s):\n", len(found))
		printTransactions(m.out, found)
	}
	return nil
}

func (m *budgetMenu) add() error {
	desc, err := m.p.Input("Description", nil)
	if err != nil {
		return err
	}
	if desc == "" {
		fmt.Fprintln(m.out, "Description cannot be empty.")
		return nil
	}
	rawAmount, err := m.p.Input("Amount (Enter to cancel)", func(s string) error {
		if s == "" {
			return nil
		}
		_, err := model.ParseAmount(s)
		return err
	})
	if err != nil || rawAmount == "" {
		return err
	}
	amount, _ := model.ParseAmount(rawAmount)
	typ, err := m.p.Input("Type (income/expense)", func(s string) error {
		_, err := model.ParseDirection(s)
		return err
	})
	if err != nil {
		return err
	}
	category, err := m.p.Input("Category (Enter for 'general')", nil)
	if err != nil {
		return err
	}
	tx, err := m.b.Add(desc, amount, typ, category)
	if tx == nil {
		if model.IsValidation(err) {
			fmt.Fprintf(m.out, "Error: %v\n", err)
			return nil
		}
		return err
	}
	fmt.Fprintf(m.out, "Added: %s\n", tx)
	reportSave(m.out, err)
	return nil
}

func init() {
	budgetAddCmd.Flags().StringP("type", "t", "expense", "income or expense")
	budgetAddCmd.Flags().StringP("category", "c", "", "category (default general)")
	budgetListCmd.Flags().StringP("category", "c", "", "only transactions in this category")

	budgetCmd.AddCommand(budgetAddCmd)
	budgetCmd.AddCommand(budgetListCmd)
	budgetCmd.AddCommand(budgetBalanceCmd)
	budgetCmd.AddCommand(budgetSearchCmd)
	rootCmd.AddCommand(budgetCmd)
}
