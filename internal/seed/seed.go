package seed

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/schooladmin/internal/app/services"
	"github.com/yigit/schooladmin/internal/config"
)

// CreateDefaultAdmin makes sure the configured admin employee exists.
// Nothing is seeded when no admin email is configured.
func CreateDefaultAdmin(ctx context.Context, employees *services.EmployeeService, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" {
		lgr.Info().Msg("No admin email configured, skipping admin seed")
		return nil
	}

	account, err := employees.EnsureAdmin(ctx, services.NewAdmin{
		Email:     cfg.Admin.Email,
		Username:  cfg.Admin.Username,
		FirstName: cfg.Admin.FirstName,
		LastName:  cfg.Admin.LastName,
		Password:  cfg.Admin.Password,
	})
	if err != nil {
		lgr.Error().Err(err).Str("email", cfg.Admin.Email).Msg("Error creating default admin")
		return err
	}

	event := lgr.Info().Int64("employeeId", account.Employee.ID).Str("email", account.Employee.Email)
	if account.GeneratedPassword != "" {
		event = event.Str("password", account.GeneratedPassword)
	}
	if account.Created {
		event.Msg("Default admin created")
	} else {
		event.Msg("Default admin already present, admin flag ensured")
	}
	return nil
}
