package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tjjh89017/codestore-go/internal/ctrl"
	"github.com/tjjh89017/codestore-go/internal/store"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored codes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			format, err := ctrl.ParseFormat(output)
			if err != nil {
				return err
			}
			sorted, _ := cmd.Flags().GetBool("sort")

			ctx := cmd.Context()
			remote, err := store.Resolve(ctx)
			if err != nil {
				return err
			}

			return ctrl.NewListController(remote, zerolog.Ctx(ctx)).
				Execute(ctx, cmd.OutOrStdout(), ctrl.ListOptions{Format: format, Sort: sorted})
		},
	}

	cmd.Flags().StringP("output", "o", string(ctrl.FormatText), "output format: text, json or yaml")
	cmd.Flags().Bool("sort", false, "sort by key instead of server order")

	return cmd
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get KEY...",
		Aliases: []string{"show", "cat"},
		Short:   "Print the content stored under each key",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			remote, err := store.Resolve(ctx)
			if err != nil {
				return err
			}

			return ctrl.NewShowController(remote, zerolog.Ctx(ctx)).Execute(ctx, cmd.OutOrStdout(), args...)
		},
	}
}

func newPutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "put KEY [FILE|-]",
		Short: "Store content under a key, read from FILE or stdin",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			remote, err := store.Resolve(ctx)
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if len(args) == 2 && args[1] != "-" {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", args[1], err)
				}
				defer f.Close()
				r = f
			}

			return ctrl.NewPutController(remote, zerolog.Ctx(ctx)).Execute(ctx, cmd.OutOrStdout(), args[0], r)
		},
	}
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete KEY...",
		Aliases: []string{"rm"},
		Short:   "Delete the codes stored under each key",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			remote, err := store.Resolve(ctx)
			if err != nil {
				return err
			}

			return ctrl.NewDeleteController(remote, zerolog.Ctx(ctx)).Execute(ctx, args...)
		},
	}
}
