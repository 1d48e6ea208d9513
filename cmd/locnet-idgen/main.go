// locnet-idgen prints a fresh node id and the host's GPS coordinates as
// iop-locnetd flags:
//
//	--nodeid <sha256 hex>
//	--latitude <lat>
//	--longitude <lon>
//
// The lines can be passed on the command line or saved as iop-locnet.cfg.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spacemeshos/locnet-idgen/cmd"
	"github.com/spacemeshos/locnet-idgen/emitter"
	"github.com/spacemeshos/locnet-idgen/geoloc"
	"github.com/spacemeshos/locnet-idgen/identity"
	"github.com/spacemeshos/locnet-idgen/log"
)

var (
	version string
	commit  string
	branch  string
)

func newCommand() *cobra.Command {
	vip := viper.New()
	c := &cobra.Command{
		Use:   "locnet-idgen",
		Short: "generate node id and GPS coordinates flags for iop-locnetd",
		// any positional argument is ignored
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		Version:            cmd.VersionString(),
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(c *cobra.Command, _ []string) error {
			conf, err := cmd.ParseConfig(vip)
			if err != nil {
				err = log.ErrMalformedConfig(err)
				cmd.StartupLogger(c.ErrOrStderr()).With().Error("invalid configuration", log.ErrField(err))
				return err
			}
			logger, err := cmd.SetupLogging(conf, c.ErrOrStderr())
			if err != nil {
				err = log.ErrMalformedConfig(err)
				cmd.StartupLogger(c.ErrOrStderr()).With().Error("invalid configuration", log.ErrField(err))
				return err
			}

			logger.With().Debug("starting",
				log.String("version", cmd.VersionString()),
				log.String("flags", strings.Join(cmd.ChangedFlags(c.Flags()), " ")),
			)

			locator, err := geoloc.New(
				geoloc.WithConfig(conf.Geoloc),
				geoloc.WithLogger(logger.WithName("geoloc")),
			)
			if err != nil {
				err = log.ErrLocate(err)
				logger.With().Error("failed to create locator", log.ErrField(err))
				return err
			}
			e := emitter.New(
				identity.NewGenerator(identity.WithLogger(logger.WithName("identity"))),
				locator,
				emitter.WithHost(conf.WithHost),
				emitter.WithLogger(logger.WithName("emitter")),
			)
			if err := e.Run(c.Context(), c.OutOrStdout()); err != nil {
				logger.With().Error("failed to emit locnet flags", log.ErrField(err))
				return err
			}
			return nil
		},
	}
	c.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		err = log.ErrBadFlags(err)
		cmd.StartupLogger(c.ErrOrStderr()).With().Error("failed to parse arguments", log.ErrField(err))
		return err
	})
	if err := cmd.AddCommands(c, vip); err != nil {
		cmd.StartupLogger(c.ErrOrStderr()).With().Error("failed to register flags", log.ErrBadFlags(err))
	}
	return c
}

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Branch = branch

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newCommand().ExecuteContext(ctx)
	cancel()
	if err != nil {
		// already logged
		os.Exit(1)
	}
}
