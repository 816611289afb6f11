package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ezrec/abacus/web"
)

func serveCmd(a *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: f("Serve the demos over HTTP"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if cmd.Flags().Changed("listen") {
				a.cfg.Server.Listen = listen
				err = a.cfg.Validate()
				if err != nil {
					return
				}
			}

			pref, err := a.preference()
			if err != nil {
				return
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = web.New(a.cfg, pref, a.log).ListenAndServe(ctx)
			if errors.Is(err, http.ErrServerClosed) || errors.Is(err, context.Canceled) {
				err = nil
			}
			return
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", f("listen address, host:port"))

	return cmd
}
