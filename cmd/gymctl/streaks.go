package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/2beens/gymsphere/internal/plans"
	"github.com/2beens/gymsphere/internal/streaks"
	"github.com/2beens/gymsphere/internal/users"

	"github.com/spf13/cobra"
)

var flagStreaksFix bool

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Inspect streak counters",
}

var streaksDebugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Print stored vs recomputed streaks for all users",
	Long: `Print the cached streak counters of every user next to the values
recomputed from their latest plan. With --fix, differing counters are updated.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		usersRepo := users.NewRepo(pool)
		plansRepo := plans.NewRepo(pool)
		service := streaks.NewService(plansRepo, usersRepo)

		all, err := usersRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "USER\tEMAIL\tSTORED W/D\tCOMPUTED W/D\tLONGEST W/D\tSTATUS")
		for i := range all {
			u := &all[i]
			stored := fmt.Sprintf("%d/%d", u.WorkoutStreak, u.DietStreak)

			plan, err := plansRepo.Latest(ctx, u.ID)
			if errors.Is(err, plans.ErrPlanNotFound) {
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t-\t-\tno plan\n", u.ID, u.Email, stored)
				continue
			}
			if err != nil {
				return fmt.Errorf("latest plan for user %d: %w", u.ID, err)
			}

			current, longest, err := service.Stats(ctx, plan.ID)
			if err != nil {
				return fmt.Errorf("streak stats for user %d: %w", u.ID, err)
			}

			status := "ok"
			if current.Workout != u.WorkoutStreak || current.Diet != u.DietStreak {
				status = "differs"
				if flagStreaksFix {
					if _, err := service.Calculate(ctx, u); err != nil {
						return fmt.Errorf("fix streaks for user %d: %w", u.ID, err)
					}
					status = "fixed"
				}
			}

			_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%d/%d\t%d/%d\t%s\n",
				u.ID, u.Email, stored, current.Workout, current.Diet, longest.Workout, longest.Diet, status)
		}
		return tw.Flush()
	},
}

func init() {
	streaksDebugCmd.Flags().BoolVar(&flagStreaksFix, "fix", false, "update differing counters")
	streaksCmd.AddCommand(streaksDebugCmd)
}
