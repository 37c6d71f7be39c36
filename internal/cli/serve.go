package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sunburst/internal/server"
	"github.com/matzehuels/sunburst/pkg/pipeline"
)

// serveCommand creates the serve command, which exposes the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the label and render API over HTTP",
		Long: `Serve starts an HTTP server with the following routes:

  GET  /healthz      liveness and build information
  POST /v1/labels    label placements as JSON
  POST /v1/render    the chart as svg, png, pdf or json

Chart, label and cache settings come from the config file; request bodies
override the chart and label settings per call.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			runner, err := c.newRunner(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer runner.Close()

			defaults := pipeline.OptionsFromConfig(cfg)
			srv := server.New(runner, defaults, cfg.Server.MaxBodyBytes, c.Logger)

			printInfo("Listening on %s", StyleHighlight.Render(addr))
			printNextStep("Try", "curl -s localhost"+portOf(addr)+"/healthz")
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}

// portOf returns the ":port" suffix of a listen address.
func portOf(addr string) string {
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i:]
	}
	return ":" + addr
}
