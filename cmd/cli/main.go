package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "openbooks-cli",
		Short: "OpenBooks CLI tool",
		Long:  `A command line interface for interacting with the OpenBooks API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the OpenBooks API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	balanceCmd := &cobra.Command{
		Use:   "balances",
		Short: "Balance operations",
	}
	balanceCmd.AddCommand(&cobra.Command{
		Use:   "recalculate <business-id>",
		Short: "Rebuild every account balance of a business from its entries",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			recalculate(args[0])
		},
	})
	rootCmd.AddCommand(balanceCmd)

	sequenceCmd := &cobra.Command{
		Use:   "next-sequence <business-id>",
		Short: "Show the next free transaction sequence number of a business",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			nextSequence(args[0])
		},
	}
	rootCmd.AddCommand(sequenceCmd)

	var from, to string
	journalCmd := &cobra.Command{
		Use:   "journal <business-id>",
		Short: "List a business's journal over a date range",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			journal(args[0], from, to)
		},
	}
	journalCmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	journalCmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")
	_ = journalCmd.MarkFlagRequired("from")
	_ = journalCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(journalCmd)

	return rootCmd
}

func recalculate(businessID string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/businesses/"+businessID+"/recalculate", "application/json", nil)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("Recalculation FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Println("Balances recalculated")
}

func nextSequence(businessID string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/businesses/" + businessID + "/next-sequence")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result struct {
		SequenceNumber int64 `json:"sequence_number"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Next sequence number: %d\n", result.SequenceNumber)
}

func journal(businessID, from, to string) {
	client := &http.Client{Timeout: timeout}

	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)

	resp, err := client.Get(baseURL + "/api/v1/businesses/" + businessID + "/transactions?" + query.Encode())
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var report struct {
		Transactions []struct {
			ID             int64  `json:"id"`
			SequenceNumber int64  `json:"sequence_number"`
			Description    string `json:"description"`
			Date           string `json:"date"`
			DebitSubtotal  string `json:"debit_subtotal"`
			CreditSubtotal string `json:"credit_subtotal"`
		} `json:"transactions"`
		DebitTotal  string `json:"debit_total"`
		CreditTotal string `json:"credit_total"`
	}
	if err := json.Unmarshal(body, &report); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	for _, txn := range report.Transactions {
		fmt.Printf("#%d seq=%d %s  debit=%s credit=%s  %s\n",
			txn.ID, txn.SequenceNumber, txn.Date, txn.DebitSubtotal, txn.CreditSubtotal, txn.Description)
	}
	fmt.Printf("Totals: debit=%s credit=%s\n", report.DebitTotal, report.CreditTotal)
}
