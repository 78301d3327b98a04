// Command datadex inspects datadex dataset files.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacentio/datadex/datafile"
	"github.com/jacentio/datadex/datamap"
)

var opts = struct {
	Lenient bool
	Verbose bool
	Lang    string
	Name    string
}{}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "datadex:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "datadex",
		Short:         "Inspect datadex dataset files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelInfo
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVar(&opts.Lenient, "lenient", false,
		"Allow later records to overwrite colliding (language, name) pairs.")
	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"Log load summaries.")
	root.AddCommand(newValidateCmd(), newNamesCmd(), newLookupCmd())
	return root
}

func load(path string) (*datamap.DataMap, error) {
	return datafile.Load(path, datafile.Options{
		Lenient:           opts.Lenient,
		ValidateLanguages: true,
	})
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a dataset for structural and index errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records ok\n", args[0], m.Len())
			return nil
		},
	}
}

func newNamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "names <file>",
		Short: "List every record name in one language, in dataset order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := load(args[0])
			if err != nil {
				return err
			}
			return m.Names(opts.Lang).Each(func(name string) bool {
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return true
			})
		},
	}
	cmd.Flags().StringVar(&opts.Lang, "lang", "en", "Language code to list names in.")
	return cmd
}

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <file>",
		Short: "Print the record claiming a (language, name) pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Name == "" {
				return errors.New("--name is required")
			}
			m, err := load(args[0])
			if err != nil {
				return err
			}
			rec, ok := m.EntryOf(opts.Lang, opts.Name)
			if !ok {
				return fmt.Errorf("no record named %q in %q", opts.Name, opts.Lang)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "id: %d\n", rec.ID())
			for _, t := range rec.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "name.%s: %s\n", t.Lang, t.Name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "fields: %d\n", rec.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Lang, "lang", "en", "Language code of the lookup name.")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Display name to look up.")
	return cmd
}
