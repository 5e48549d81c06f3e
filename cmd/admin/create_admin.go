package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/schooladmin/internal/app/services"
	"github.com/yigit/schooladmin/internal/bootstrap"
)

var newAdmin services.NewAdmin

func init() {
	flags := createAdminCmd.Flags()
	flags.StringVar(&newAdmin.Email, "email", "", "admin email (required)")
	flags.StringVar(&newAdmin.Username, "username", "", "admin username, defaults to the email local part")
	flags.StringVar(&newAdmin.FirstName, "first-name", "", "admin first name")
	flags.StringVar(&newAdmin.LastName, "last-name", "", "admin last name")
	flags.StringVar(&newAdmin.Password, "password", "", "admin password, generated when empty")
	_ = createAdminCmd.MarkFlagRequired("email")
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "create an admin employee or promote an existing one",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
		cobra.CheckErr(err)

		repos, database, err := bootstrap.OpenRepositories(ctx, cfg, lgr)
		cobra.CheckErr(err)
		if database != nil {
			defer database.Close()
		}

		deps, err := bootstrap.BuildDependencies(cfg, repos, lgr)
		cobra.CheckErr(err)

		account, err := deps.Services.Employees.EnsureAdmin(ctx, newAdmin)
		cobra.CheckErr(err)

		if account.Created {
			fmt.Println("created admin", account.Employee.ID, account.Employee.Email)
		} else {
			fmt.Println("promoted admin", account.Employee.ID, account.Employee.Email)
		}
		if account.GeneratedPassword != "" {
			fmt.Println("password:", account.GeneratedPassword)
		}
	},
}
