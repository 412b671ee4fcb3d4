// Package prometheus defines a service which is used for metrics collection
// and health of a node in the beacon crawler.
package prometheus

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prysmaticlabs/beacon-crawler/runtime"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "prometheus")

// Service provides Prometheus metrics via the /metrics route. This route will
// show all the metrics registered with the Prometheus DefaultRegisterer.
type Service struct {
	server      *http.Server
	svcRegistry *runtime.ServiceRegistry
	failStatus  error
}

// Handler represents a path and handler func to serve on the same port as /metrics, /healthz, /goroutinez, etc.
type Handler struct {
	Path    string
	Handler func(http.ResponseWriter, *http.Request)
}

// NewService sets up a new instance for a given address host:port.
// An empty host will match with any IP so an address like ":2121" is perfectly acceptable.
func NewService(addr string, svcRegistry *runtime.ServiceRegistry, additionalHandlers ...Handler) *Service {
	s := &Service{svcRegistry: svcRegistry}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		MaxRequestsInFlight: 5,
		Timeout:             30 * time.Second,
	}))
	mux.HandleFunc("/healthz", s.healthzHandler)
	mux.HandleFunc("/goroutinez", s.goroutinezHandler)

	// Register additional handlers.
	for _, h := range additionalHandlers {
		mux.HandleFunc(h.Path, h.Handler)
	}

	s.server = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: time.Second}

	return s
}

type serviceStatus struct {
	Name   string `json:"service"`
	Status bool   `json:"status"`
	Err    string `json:"error,omitempty"`
}

func (s *Service) healthzHandler(w http.ResponseWriter, r *http.Request) {
	response := &generatedResponse{}
	statuses := make([]serviceStatus, 0)
	healthy := true
	if s.svcRegistry != nil {
		names, report := s.svcRegistry.StatusReport()
		for _, name := range names {
			st := serviceStatus{Name: name, Status: report[name] == "", Err: report[name]}
			if !st.Status {
				healthy = false
				fmt.Fprintf(&response.Text, "%s: ERROR %s\n", name, st.Err)
			} else {
				fmt.Fprintf(&response.Text, "%s: OK\n", name)
			}
			statuses = append(statuses, st)
		}
	}
	response.Data = statuses

	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}
	if err := writeResponse(w, r, code, response); err != nil {
		log.WithError(err).Error("Could not write healthz response")
	}
}

func (_ *Service) goroutinezHandler(w http.ResponseWriter, _ *http.Request) {
	stack := pprof.Lookup("goroutine")
	if err := stack.WriteTo(w, 2); err != nil {
		log.WithError(err).Error("Failed to write goroutines stack")
		w.WriteHeader(http.StatusInternalServerError)
		if _, err := w.Write([]byte("Failed to write goroutines stack")); err != nil {
			log.WithError(err).Error("Failed to write response")
		}
	}
}

// Start the prometheus service.
func (s *Service) Start() {
	go func() {
		// See if the port is already used.
		addrParts, err := net.ResolveTCPAddr("tcp", s.server.Addr)
		if err == nil {
			conn, err := net.DialTimeout("tcp", addrParts.String(), time.Second)
			if err == nil {
				if err := conn.Close(); err != nil {
					log.WithError(err).Error("Failed to close connection")
				}
				// Something on the port; we cannot use it.
				log.WithField("address", s.server.Addr).Warn("Port already in use; cannot start prometheus service")
				s.failStatus = errors.New("port already in use")
				return
			}
		}
		log.WithField("address", s.server.Addr).Debug("Starting prometheus service")
		err = s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Errorf("Could not listen to host:port :%s: %v", s.server.Addr, err)
			s.failStatus = err
		}
	}()
}

// Stop the service gracefully.
func (s *Service) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Status checks for any service failure conditions.
func (s *Service) Status() error {
	return s.failStatus
}
