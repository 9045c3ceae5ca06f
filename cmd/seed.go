package main

import (
	"context"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/database"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newSeedCmd(a *app) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample restaurants, pizzas and prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDatabase()
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			return seedDatabase(cmd.Context(), db, reset)
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "delete existing rows before seeding")
	return cmd
}

// seedDatabase seeds the database with initial data
func seedDatabase(ctx context.Context, db *gorm.DB, reset bool) error {
	seeded, err := database.Seed(ctx, db, reset)
	if err != nil {
		return err
	}
	log.WithField("seeded", seeded).Info("Seeding finished")
	return nil
}
