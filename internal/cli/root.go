package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tjjh89017/codestore-go/internal/config"
)

type SetupFunc func() (*App, error)

var flagBindings = map[string]string{
	"base_url":  "base-url",
	"cookie":    "cookie",
	"log.level": "log-level",
}

func NewRootCommand(setup SetupFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "codestore",
		Short:         "Manage snippets kept in a remote code store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.File, _ = cmd.Flags().GetString("config")

			app, err := setup()
			if err != nil {
				return err
			}

			cmd.SetContext(app.Context(cmd.Context()))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("base-url", "", "code store base url (default http://localhost:8080)")
	flags.String("cookie", "", "session cookies sent with every request, as name=value; name2=value2")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("config", "", "config file path")

	for key, flag := range flagBindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			log.Error().Err(err).Str("flag", flag).Msg("failed to bind flag")
		}
	}

	root.AddCommand(
		newListCommand(),
		newGetCommand(),
		newPutCommand(),
		newDeleteCommand(),
	)

	return root
}
