package main

import (
	"fmt"

	"github.com/2beens/gymsphere/internal/catalog"
	"github.com/2beens/gymsphere/internal/db"

	"github.com/spf13/cobra"
)

var initDBCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the database tables",
	Long:  `Apply the schema. Existing tables are kept, so running it twice is safe.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := db.ApplySchema(cmd.Context(), pool); err != nil {
			return err
		}
		fmt.Println("schema applied")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default exercise and product catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		exercises, products, err := catalog.Seed(cmd.Context(), catalog.NewRepo(pool))
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		fmt.Printf("seeded %d exercises, %d products\n", exercises, products)
		return nil
	},
}
