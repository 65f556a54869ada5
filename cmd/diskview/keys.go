package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dshills/diskview/internal/input/chord"
	"github.com/dshills/diskview/internal/input/keymap"
	"github.com/dshills/diskview/internal/input/mode"
)

func newKeysCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the key bindings of every mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			normalizer, err := newNormalizer(afero.NewOsFs(), cfg)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			writeKeys(w, keymap.DefaultRegistry(), normalizer)
			return w.Flush()
		},
	}
}

func writeKeys(w *tabwriter.Writer, registry *keymap.Registry, n *chord.Normalizer) {
	for _, m := range mode.All() {
		km := registry.Get(m)
		if km == nil {
			continue
		}
		fmt.Fprintf(w, "%s\n", m)
		if km.CatchAll {
			fmt.Fprintf(w, "  any key\t%s\n", km.Default.Name)
			continue
		}
		for _, b := range km.Bindings {
			var keys []string
			for _, c := range b.Chords {
				if members := n.Members(c); len(members) > 0 {
					keys = append(keys, members...)
				} else {
					keys = append(keys, c.String())
				}
			}
			desc := b.Description
			if desc == "" {
				desc = b.Action.Name
			}
			fmt.Fprintf(w, "  %s\t%s\n", strings.Join(keys, ", "), desc)
		}
	}
}
