package cli

import (
	"fmt"

	"github.com/LiquidSebabas/InnOutPG/internal/domain"
	"github.com/LiquidSebabas/InnOutPG/internal/user"

	"github.com/spf13/cobra"
)

func (a *App) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage login accounts",
	}

	var req user.CreateUserRequest
	create := &cobra.Command{
		Use:     "create",
		Short:   "Create a login account",
		Example: `  innoutctl users create --email=admin@innout.gt --name="Admin" --password=changeme123`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withServices(cmd.Context(), func(s *Services) error {
				created, err := s.Users.Create(cmd.Context(), req)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "created %s (%s) id=%s\n", created.Email, created.Role, created.ID)
				return nil
			})
		},
	}
	create.Flags().StringVar(&req.Email, "email", "", "login email")
	create.Flags().StringVar(&req.Name, "name", "", "display name")
	create.Flags().StringVar(&req.Password, "password", "", "initial password (min 8 characters)")
	create.Flags().StringVar(&req.Role, "role", domain.RoleAdmin, "admin, hr or manager")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}
