// Command xgbext inspects the X extensions a server implements and decodes
// captured X error and event buffers.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/BurntSushi/xgbext"
)

// connFlags are the flags shared by every command that talks to a server.
type connFlags struct {
	display string
	verbose bool
}

func (f *connFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.display, "display", "d", "", "X display to connect to (default $DISPLAY)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Log failed and rejected extension queries")
}

// logger returns the registry logger for the flags, writing to w.
func (f *connFlags) logger(w io.Writer) *log.Logger {
	xgbext.PrintLog = f.verbose
	return log.New(w, "XGBEXT: ", 0)
}

func main() {
	flags := &connFlags{}
	rootCmd := &cobra.Command{
		Use:   "xgbext",
		Short: "Inspect X extensions and decode X errors and events",
		Long: `xgbext resolves the X protocol extensions implemented by a server and
classifies raw 32-byte X errors and events against them.

Examples:
  xgbext extensions
  xgbext extensions --resolve --display=:1
  xgbext decode --bind RANDR=140:89:147 --error 0094...
  xgbext decode --live --event 59020b00...`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		extensionsCmd(flags),
		decodeCmd(flags),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
