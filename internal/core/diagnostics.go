package core

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// serveDiagnostics exposes the local status endpoint: per-check state at
// /status and the runner's own metrics at /metrics.
func (a *Agent) serveDiagnostics(address string) (func(), error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	router.HandleFunc("/status", a.handleStatus).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	server := &http.Server{
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Diagnostics server failed")
		}
	}()
	log.Infof("Serving diagnostics on http://%s/status", listener.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}, nil
}

func (a *Agent) handleStatus(rw http.ResponseWriter, _ *http.Request) {
	rw.Header().Set("Content-Type", "application/json")

	statuses := a.manager.Statuses()
	if err := json.NewEncoder(rw).Encode(statuses); err != nil {
		log.WithError(err).Error("Could not serialize status output")
	}
}
