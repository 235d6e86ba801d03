package main

import (
	"context"
	"net/http"
	"strings"

	_ "net/http/pprof"

	"go.uber.org/zap"
)

const defaultPprofBind = ":6060"

func startPprofServer(ctx context.Context, bind string, logkit *zap.Logger) {
	addr := strings.TrimSpace(bind)
	if addr == "" {
		addr = defaultPprofBind
	}
	srv := &http.Server{Addr: addr}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logkit.Error("pprof server stopped", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	logkit.Debug("start pprof server", zap.String("bind", addr))
}
