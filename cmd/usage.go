package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show the quota of the API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		usage, err := client.GetUsage()
		if err != nil {
			return fmt.Errorf("failed to get usage: %w", err)
		}
		fmt.Printf("status: %s\n", usage.Status)
		fmt.Printf("creationTime: %s\n", usage.CreationTime)
		fmt.Printf("requestsLeft: %d\n", usage.RequestsLeft)
		fmt.Printf("bitsLeft: %d\n", usage.BitsLeft)
		fmt.Printf("totalRequests: %d\n", usage.TotalRequests)
		fmt.Printf("totalBits: %d\n", usage.TotalBits)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
}
