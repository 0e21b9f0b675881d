package main

import (
	"fmt"
	"strconv"

	"github.com/2beens/gymsphere/internal/catalog"
	"github.com/2beens/gymsphere/internal/plans"
	"github.com/2beens/gymsphere/internal/users"
	"github.com/2beens/gymsphere/internal/workout"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage 30-day plans",
}

var planRegenCmd = &cobra.Command{
	Use:   "regen [user-id]",
	Short: "Delete the user's plans and generate a fresh one",
	Long: `Delete all plans of a user and generate a new 30-day plan starting today,
using the user's current profile.

Examples:
  gymctl plan regen 42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}

		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		user, err := users.NewRepo(pool).Get(ctx, userID)
		if err != nil {
			return fmt.Errorf("get user %d: %w", userID, err)
		}

		plansRepo := plans.NewRepo(pool)
		deleted, err := plansRepo.DeleteForUser(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("delete plans: %w", err)
		}

		exercises := catalog.NewExerciseCatalog(catalog.NewRepo(pool), nil, 0)
		generator := plans.NewGenerator(workout.NewSelector(exercises), plansRepo, nil)
		plan, err := generator.Generate(ctx, user, "")
		if err != nil {
			return fmt.Errorf("generate plan: %w", err)
		}

		fmt.Printf("deleted %d plan(s), new plan %d for user %d\n", deleted, plan.ID, user.ID)
		return nil
	},
}

func init() {
	planCmd.AddCommand(planRegenCmd)
}
