package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BurntSushi/xgbext"
	"github.com/BurntSushi/xgbext/xgbconn"
)

func extensionsCmd(flags *connFlags) *cobra.Command {
	var resolve bool
	cmd := &cobra.Command{
		Use:   "extensions",
		Short: "List known extensions",
		Long: `List every extension xgbext knows about, with the number of error and
event codes each allocates and whether its decoders are compiled in.

With --resolve, connect to the display, describe the server and show where
it placed each extension it implements.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !resolve {
				return listExtensions(cmd.OutOrStdout())
			}
			conn, err := xgbconn.Dial(flags.display)
			if err != nil {
				return err
			}
			defer conn.Close()

			info, err := conn.Server(cmd.Context())
			if err != nil {
				return err
			}
			if _, err := info.WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}

			r := xgbext.NewRegistry(conn, xgbext.WithLogger(flags.logger(cmd.ErrOrStderr())))
			r.ResolveAll(cmd.Context())
			return listResolved(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().BoolVar(&resolve, "resolve", false, "Query the display for each extension")
	return cmd
}

func listExtensions(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EXTENSION\tNAME\tERRORS\tEVENTS\tGENERIC\tDECODERS")
	for _, ext := range xgbext.Extensions() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n", ext, ext.XName(),
			ext.NumErrors(), ext.NumEvents(), ext.NumGenericEvents(), compiled(ext))
	}
	return tw.Flush()
}

func listResolved(w io.Writer, r *xgbext.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EXTENSION\tMAJOR\tFIRST EVENT\tFIRST ERROR\tDECODERS")
	for _, b := range r.Bindings() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", b.Extension, b.MajorOpcode,
			b.FirstEvent, b.FirstError, compiled(b.Extension))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, ext := range xgbext.Extensions() {
		if err := r.QueryErr(ext); err != nil {
			fmt.Fprintf(w, "%s unavailable: %s\n", ext, err)
		}
	}
	return nil
}

func compiled(ext xgbext.Extension) string {
	switch {
	case ext.NumErrors() == 0 && ext.NumEvents() == 0 && ext.NumGenericEvents() == 0:
		return "-"
	case ext.Compiled():
		return "yes"
	}
	return "no"
}
