package main

import (
	"covenant-command-center/internal/adapter/repository/sqlstore"
	"covenant-command-center/internal/infrastructure/seed"

	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo portfolio into an empty store",
		Long: `Load the demo portfolio: 4 loans, 5 covenants and 3 alerts.
A store that already holds loans is left untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()
			_, err = seed.Demo(cmd.Context(), sqlstore.NewGormUoW(a.db), a.log)
			return err
		},
	}
}
