package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <fixture.yaml>",
	Short: "Import teams and sessions from a YAML fixture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fixture, err := ReadFixture(args[0])
		if err != nil {
			return err
		}
		teams, sessions := fixture.ToDomain()

		store, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := cmd.Context()
		for _, t := range teams {
			if err := store.SaveTeam(ctx, t); err != nil {
				return fmt.Errorf("saving team %s: %w", t.Name, err)
			}
		}
		imported := 0
		for _, s := range sessions {
			if err := s.Validate(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipping session %s: %v\n", s.ID, err)
				continue
			}
			if err := store.Save(ctx, s); err != nil {
				return fmt.Errorf("saving session %s: %w", s.ID, err)
			}
			imported++
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %d teams, %d sessions into %s\n", len(teams), imported, dbPath)
		return nil
	},
}
