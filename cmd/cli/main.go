package main

import (
	"bytes"
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
	rootCmd := &cobra.Command{
		Use:   "ledger-cli",
		Short: "Ledger CLI tool",
		Long:  `A command line interface for interacting with the ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(movementsCmd())
	rootCmd.AddCommand(ledgerCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func movementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movements",
		Short: "Movement operations",
	}

	var limit, offset int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List movements in ledger order",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			q.Set("limit", fmt.Sprintf("%d", limit))
			q.Set("offset", fmt.Sprintf("%d", offset))
			body, err := doGet("/api/v1/movements/?" + q.Encode())
			if err != nil {
				return err
			}

			var movements []map[string]any
			if err := json.Unmarshal(body, &movements); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			fmt.Printf("%-28s %-12s %-30s %12s %12s\n", "ID", "DATE", "CONCEPT", "AMOUNT", "BALANCE")
			for _, m := range movements {
				fmt.Printf("%-28s %-12s %-30s %12v %12v\n",
					m["id"], m["date"], truncate(fmt.Sprintf("%v", m["concept"]), 30),
					m["amount"], m["balance"])
			}
			return nil
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of movements")
	listCmd.Flags().IntVar(&offset, "offset", 0, "Number of movements to skip")

	var date, concept, amount, movementType string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Insert a movement",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"concept": concept,
				"amount":  json.Number(amount),
			}
			if date != "" {
				payload["date"] = date
			}
			if movementType != "" {
				payload["type"] = movementType
			}
			body, err := doPost("/api/v1/movements/", payload)
			if err != nil {
				return err
			}
			return printRawJSON(body)
		},
	}
	createCmd.Flags().StringVar(&date, "date", "", "Movement date (YYYY-MM-DD, defaults to today)")
	createCmd.Flags().StringVar(&concept, "concept", "", "Movement concept")
	createCmd.Flags().StringVar(&amount, "amount", "0", "Signed amount")
	createCmd.Flags().StringVar(&movementType, "type", "", "Movement type (income or expense)")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a movement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doDelete("/api/v1/movements/" + args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted movement %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(listCmd, createCmd, deleteCmd)
	return cmd
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the current balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := doGet("/api/v1/ledger/balance")
			if err != nil {
				return err
			}
			return printRawJSON(body)
		},
	}

	var from, to string
	totalsCmd := &cobra.Command{
		Use:   "totals",
		Short: "Show income, expense and net balance for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			q.Set("from", from)
			q.Set("to", to)
			body, err := doGet("/api/v1/ledger/totals?" + q.Encode())
			if err != nil {
				return err
			}
			return printRawJSON(body)
		},
	}
	totalsCmd.Flags().StringVar(&from, "from", "", "Period start (YYYY-MM-DD)")
	totalsCmd.Flags().StringVar(&to, "to", "", "Period end (YYYY-MM-DD)")
	_ = totalsCmd.MarkFlagRequired("from")
	_ = totalsCmd.MarkFlagRequired("to")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show ledger statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := doGet("/api/v1/ledger/statistics")
			if err != nil {
				return err
			}
			return printRawJSON(body)
		},
	}

	recalculateCmd := &cobra.Command{
		Use:   "recalculate",
		Short: "Recalculate every running balance from the first row",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := doPost("/api/v1/ledger/recalculate", nil)
			if err != nil {
				return err
			}
			return printRawJSON(body)
		},
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := doGet("/api/v1/ledger/consistency")
			if err != nil {
				return err
			}

			var result map[string]any
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			if consistent, ok := result["consistent"].(bool); ok && consistent {
				fmt.Println("Consistency check PASSED")
			} else {
				fmt.Println("Consistency check FAILED")
			}
			return nil
		},
	}

	cmd.AddCommand(balanceCmd, totalsCmd, statsCmd, recalculateCmd, consistencyCmd)
	return cmd
}

func doGet(path string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	return readResponse(resp)
}

func doPost(path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", body)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	return readResponse(resp)
}

func doDelete(path string) error {
	req, err := http.NewRequest(http.MethodDelete, baseURL+path, nil)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	_, err = readResponse(resp)
	return err
}

func readResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func printRawJSON(body []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	fmt.Println(buf.String())
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
