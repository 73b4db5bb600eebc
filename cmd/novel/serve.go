package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/reusee/novel/logs"
	"github.com/reusee/novel/novelconfigs"
	"github.com/reusee/novel/novelhost"
	"golang.org/x/net/netutil"
)

func serveCmd(ctx context.Context) any {
	return func(
		logger logs.Logger,
		server *novelhost.Server,
		listen novelconfigs.Listen,
		maxSessions novelconfigs.MaxSessions,
	) error {
		mux := http.NewServeMux()
		mux.Handle("/ws", server)

		httpServer := &http.Server{
			Addr:              string(listen),
			Handler:           mux,
			ReadHeaderTimeout: time.Second * 10,
		}
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
			defer cancel()
			_ = httpServer.Shutdown(shutdownCtx)
		}()

		ln, err := net.Listen("tcp", httpServer.Addr)
		if err != nil {
			return err
		}
		// headroom above the session cap so refused sessions get a reply instead of queueing
		ln = netutil.LimitListener(ln, int(maxSessions)*2)

		logger.Warn("serving",
			"addr", ln.Addr().String(),
			"path", "/ws",
			"allow_remote", server.AllowRemote,
		)
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
