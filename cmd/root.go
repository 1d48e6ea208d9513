package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spacemeshos/locnet-idgen/config"
)

// EnvPrefix is prepended to every flag name to form its environment variable,
// e.g. --log-level is read from LOCNET_IDGEN_LOG_LEVEL.
const EnvPrefix = "LOCNET_IDGEN"

// AddCommands adds the locnet-idgen flags to cmd and binds them to vip.
func AddCommands(cmd *cobra.Command, vip *viper.Viper) error {
	defaults := config.DefaultConfig()

	/** ======================== Geolocation Flags ========================== **/

	cmd.Flags().String("endpoint", defaults.Geoloc.URI,
		"geolocation service queried once for the public address location")
	cmd.Flags().Duration("timeout", defaults.Geoloc.Timeout,
		"timeout of the geolocation request, 0 keeps the http client default")

	/** ======================== Output Flags ========================== **/

	cmd.Flags().Bool("with-host", defaults.WithHost,
		"also print --host with the public address reported by the service")

	/** ======================== Logging Flags ========================== **/

	cmd.Flags().String("log-level", defaults.LOGGING.Level,
		"diagnostics level (debug, info, warn, error), diagnostics go to stderr")
	cmd.Flags().String("log-encoder", defaults.LOGGING.Encoder,
		fmt.Sprintf("diagnostics format, %s or %s", config.ConsoleLogEncoder, config.JSONLogEncoder))

	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	// Bind Flags to config
	if err := vip.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return nil
}
