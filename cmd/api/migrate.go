package main

import "github.com/spf13/cobra"

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()
			a.log.InfoContext(cmd.Context(), "migration complete")
			return nil
		},
	}
}
