package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/patrimap-go/internal/server"
	"github.com/ukaji3/patrimap-go/pkg/patrimap"
	"github.com/ukaji3/patrimap-go/pkg/patrimap/dashboard"
	"github.com/ukaji3/patrimap-go/pkg/patrimap/output"
	"github.com/ukaji3/patrimap-go/pkg/patrimap/reshape"
)

func newReshapeCmd(a *app) *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "reshape",
		Short: "Print ownership records as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := patrimap.Load(cmd.Context(), a.options())
			if err != nil {
				return fmt.Errorf("load failed: %w", err)
			}
			jsonData, err := output.ToJSON(snap.Ownership, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newOwnersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "owners",
		Short: "List owners found in the ownership matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := patrimap.Load(cmd.Context(), a.options())
			if err != nil {
				return fmt.Errorf("load failed: %w", err)
			}
			for _, o := range reshape.Owners(snap.Ownership) {
				fmt.Fprintln(cmd.OutOrStdout(), o)
			}
			return nil
		},
	}
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		format     string
		owners     []string
		width      int
		outputPath string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := patrimap.Load(cmd.Context(), a.options())
			if err != nil {
				return fmt.Errorf("load failed: %w", err)
			}
			d := dashboard.Build(snap, dashboard.Filter{Owners: owners})

			var out string
			switch format {
			case "json":
				data, err := output.ToJSON(d, true)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				out = string(data) + "\n"
			case "markdown", "terminal", "html":
				md, err := output.Markdown(d)
				if err != nil {
					return err
				}
				switch format {
				case "markdown":
					out = md
				case "terminal":
					out, err = output.Terminal(md, width)
				case "html":
					out, err = output.MarkdownToHTML(md)
				}
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("invalid format: %s (must be markdown, terminal, html or json)", format)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "terminal", "Output format: markdown, terminal, html, json")
	cmd.Flags().StringArrayVar(&owners, "owner", nil, "Owner to show (repeatable; default: all owners)")
	cmd.Flags().IntVar(&width, "width", 100, "Word wrap width for terminal output")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive dashboard over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			h := server.NewHandler(a.options(), nil, a.logger)
			srv := server.NewServer(a.cfg.Addr, h)

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("listening", "addr", a.cfg.Addr,
					"ownership", a.cfg.OwnershipPath, "properties", a.cfg.PropertiesPath)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			a.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides PATRIMAP_ADDR)")
	return cmd
}
