package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/gymsphere/internal/users"
	"github.com/2beens/gymsphere/pkg"

	"github.com/spf13/cobra"
)

var (
	flagAdminName     string
	flagAdminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin [email]",
	Short: "Create an admin user",
	Long: `Create a user with admin rights, able to use the /admin endpoints.

Examples:
  gymctl create-admin admin@gymsphere.app --password s3cret`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(args[0])
		if email == "" || flagAdminPassword == "" {
			return errors.New("email and password are required")
		}

		pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		hash, err := pkg.HashPassword(flagAdminPassword)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		admin, err := users.NewRepo(pool).Create(cmd.Context(), &users.User{
			Email:        email,
			Fullname:     flagAdminName,
			PasswordHash: hash,
			IsAdmin:      true,
		})
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		fmt.Printf("admin created: id=%d email=%s\n", admin.ID, admin.Email)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&flagAdminName, "name", "Admin", "full name")
	createAdminCmd.Flags().StringVar(&flagAdminPassword, "password", "", "password (required)")
	_ = createAdminCmd.MarkFlagRequired("password")
}
