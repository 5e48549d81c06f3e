package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/schooladmin/internal/app/migrations"
	"github.com/yigit/schooladmin/internal/bootstrap"
	"github.com/yigit/schooladmin/internal/config"
)

var listSchema bool

func init() {
	schemaCmd.Flags().BoolVarP(&listSchema, "list", "l", false, "only list the embedded schema files")
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "apply the embedded database schema",
	Run: func(cmd *cobra.Command, args []string) {
		if listSchema {
			files, err := migrations.Files()
			cobra.CheckErr(err)
			for _, name := range files {
				fmt.Println(migrations.Version(name), name)
			}
			return
		}

		cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
		cobra.CheckErr(err)
		if cfg.Database.Driver != config.DriverPostgres {
			cobra.CheckErr(fmt.Errorf("schema requires the %s driver, configured %q", config.DriverPostgres, cfg.Database.Driver))
		}

		database, err := bootstrap.SetupDatabase(context.Background(), cfg, lgr)
		cobra.CheckErr(err)
		database.Close()
		fmt.Println("schema is up to date")
	},
}
