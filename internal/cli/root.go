// Package cli holds the folio command tree: sending a contact message from
// the terminal and the owner's admin listing.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/folio/backend/internal/config"
)

const (
	keyAPIURL     = "api-url"
	keyAdminToken = "admin-token"
	keyTimeout    = "timeout"
	keyAppEnv     = "app-env"
)

// app carries state shared by every subcommand.
type app struct {
	cfgFile string
	config  *viper.Viper
}

// NewRootCmd builds the folio command tree.
func NewRootCmd() *cobra.Command {
	a := &app{config: viper.New()}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "folio talks to the portfolio contact API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	cmd.PersistentFlags().String(keyAPIURL, "http://localhost:8080", "API base URL")
	cmd.PersistentFlags().String(keyAdminToken, "", "bearer token for admin endpoints")
	cmd.PersistentFlags().Duration(keyTimeout, 15*time.Second, "request timeout")

	cmd.AddCommand(createContactCmd(a))
	cmd.AddCommand(createAdminCmd(a))
	return cmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

// initConfig layers flags over FOLIO_* env vars over the optional config file.
func (a *app) initConfig(cmd *cobra.Command) error {
	v := a.config
	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// The deployment environment is shared with the server, so it is not prefixed.
	if err := v.BindEnv(keyAppEnv, "APP_ENV"); err != nil {
		return err
	}
	v.SetDefault(keyAppEnv, config.EnvDevelopment)

	for _, key := range []string{keyAPIURL, keyAdminToken, keyTimeout} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return err
		}
	}

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}
	return nil
}

func (a *app) apiURL() string         { return a.config.GetString(keyAPIURL) }
func (a *app) adminToken() string     { return a.config.GetString(keyAdminToken) }
func (a *app) timeout() time.Duration { return a.config.GetDuration(keyTimeout) }
func (a *app) isProduction() bool     { return a.config.GetString(keyAppEnv) == config.EnvProduction }
