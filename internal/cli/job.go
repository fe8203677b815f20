package cli

import (
	"github.com/spf13/cobra"
)

func newRemindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Trigger the reminder email job",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ReminderResult

			if err := client.Post("/api/v1/jobs/reminder", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
