package app

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/librec/internal/catalog"
)

func newLoansCmd() *cobra.Command {
	var (
		userID  string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "loans",
		Short: "List loans, or check a user's active loans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loans := snap.Loans
			if userID != "" {
				var filtered []catalog.Loan
				for _, l := range loans {
					if l.UserID == userID {
						filtered = append(filtered, l)
					}
				}
				loans = filtered

				if catalog.UserHasActiveLoan(snap.Loans, userID) {
					ok("%s has active loan(s)", userID)
				} else {
					fmt.Printf("%s has no active loans\n", userID)
				}
			}

			if len(loans) == 0 {
				warn("No loans to show.")
				return nil
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(loans)
			}

			for _, l := range loans {
				status := string(l.Status)
				switch l.Status {
				case catalog.LoanActive:
					status = color.GreenString(status)
				case catalog.LoanOverdue:
					status = color.RedString(status)
				}
				fmt.Printf("  %-38s %-10s %-12s %s\n", l.ID, l.UserID, l.BookID, status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Only this user's loans, plus an active-loan check")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	cmd.AddCommand(newLoansReturnCmd())
	return cmd
}

func newLoansReturnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "return <loan-id>",
		Short: "Mark a loan returned (in memory)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loanID := args[0]
			found := false
			for _, l := range snap.Loans {
				if l.ID == loanID {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("loan %q not found", loanID)
			}

			end := time.Now().UTC().Format("2006-01-02")
			snap = snap.WithLoans(catalog.UpdatedLoanStatus(snap.Loans, loanID, catalog.LoanReturned, end))
			ok("Loan %s marked returned as of %s", loanID, end)
			return nil
		},
	}
}
