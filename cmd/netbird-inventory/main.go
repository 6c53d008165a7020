// Command netbird-inventory renders a NetBird mesh as an Ansible dynamic
// inventory: every peer becomes a host, addressable over the mesh through
// its NetBird IP.
//
// The tool follows the external inventory script contract. --list emits the
// whole inventory as JSON (groups plus _meta.hostvars), --host emits the
// variables of one host. Inventory data goes to stdout and nothing else
// does; logs go to stderr.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"netbird-inventory/internal/codec"
	"netbird-inventory/internal/config"
	"netbird-inventory/internal/inventory"
	"netbird-inventory/internal/service"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	var opts struct {
		sourcePath string
		list       bool
		host       string
		format     string
		logLevel   string
	}

	cmd := &cobra.Command{
		Use:   "netbird-inventory",
		Short: "Ansible dynamic inventory for NetBird peers",
		Long: `netbird-inventory turns the peers of a NetBird mesh into an Ansible
inventory. It reads a netbird.yml source file for the management API
location and token, fetches the peer list once, and prints the inventory
on stdout. Logs go to stderr so the output stays parseable.

Without a mode flag, --list is assumed.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q", opts.logLevel)
			}
			log.SetLevel(level)

			if opts.list && opts.host != "" {
				return fmt.Errorf("--list and --host are mutually exclusive")
			}
			return run(cmd, log, opts.sourcePath, opts.host, opts.format, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.sourcePath, "inventory", "i", "", "path to the source file (default: search for netbird.yml)")
	flags.BoolVar(&opts.list, "list", false, "emit the full inventory (the default mode)")
	flags.StringVar(&opts.host, "host", "", "emit the variables of one host")
	flags.StringVar(&opts.format, "format", "json", "output format for the full inventory: json or yaml")
	flags.StringVar(&opts.logLevel, "log-level", "warning", "log level: debug, info, warning, error")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// run executes one build and writes the requested document to out.
func run(cmd *cobra.Command, log *logrus.Logger, sourcePath, host, format string, out io.Writer) error {
	exporter, ok := codec.ByFormat(format)
	if !ok {
		return fmt.Errorf("unknown format %q (supported: %s)", format, strings.Join(codec.Formats(), ", "))
	}

	path, err := config.ResolveSourcePath(sourcePath)
	if err != nil {
		return &inventory.ConfigError{Err: err}
	}

	svc := service.NewInventoryService(service.WithLogger(log))
	inv, err := svc.BuildFromSource(cmd.Context(), path)
	if err != nil {
		return err
	}

	if host != "" {
		return codec.NewJSONCodec().ExportHostVars(inv, host, out)
	}
	return exporter.Export(inv, out)
}
