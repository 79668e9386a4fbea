package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	calendarapi "github.com/autolytix/fleetcare/api/calendar"
	maintenanceapi "github.com/autolytix/fleetcare/api/maintenance"
	vehiclesapi "github.com/autolytix/fleetcare/api/vehicles"
	"github.com/autolytix/fleetcare/config"
	"github.com/autolytix/fleetcare/core/fleet"
	coremetrics "github.com/autolytix/fleetcare/core/metrics"
	"github.com/autolytix/fleetcare/core/recommend"
	"github.com/autolytix/fleetcare/infra/logger"
	"github.com/autolytix/fleetcare/infra/metrics"
	"github.com/autolytix/fleetcare/infra/mqtt"
	"github.com/autolytix/fleetcare/infra/store"
)

// Service owns the fleet engine and its HTTP surface.
type Service struct {
	Fleet       *fleet.Service
	log         logger.Logger
	httpAddr    string
	promEnabled bool
	promPort    string
	pub         *mqtt.PahoPublisher
	sink        coremetrics.Sink
}

// New creates a Service from the configuration. The persisted snapshot is
// loaded before returning, so the fleet is queryable immediately.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	var pub fleet.StatusPublisher = fleet.NopPublisher{}
	var paho *mqtt.PahoPublisher
	if cfg.MQTT.Enabled {
		paho, err = mqtt.NewPahoPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		pub = paho
	}

	engine := recommend.NewEngine(cfg.Recommend)
	fs := store.NewFileStore(cfg.Storage.Dir)
	svc := fleet.New(
		fleet.NewMemoryVehicles(),
		fleet.NewMemoryMaintenance(),
		fleet.NewMemoryCalendar(),
		fs,
		engine,
		sink,
		pub,
		logger.New("fleet"),
	)
	if err := svc.Load(); err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	return &Service{
		Fleet:       svc,
		log:         logg,
		httpAddr:    cfg.HTTP.Addr,
		promEnabled: cfg.Metrics.PrometheusEnabled(),
		promPort:    cfg.Metrics.PrometheusPort,
		pub:         paho,
		sink:        sink,
	}, nil
}

// Run serves the API and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/api/vehicles", vehiclesapi.NewHandler(s.Fleet))
	mux.Handle("/api/vehicles/status", vehiclesapi.NewStatusHandler(s.Fleet))
	mux.Handle("/api/vehicles/recommendation", vehiclesapi.NewRecommendationHandler(s.Fleet))
	mux.Handle("/api/vehicles/costs", vehiclesapi.NewCostsHandler(s.Fleet))
	mux.Handle("/api/maintenance", maintenanceapi.NewHandler(s.Fleet))
	mux.Handle("/api/calendar", calendarapi.NewHandler(s.Fleet))

	srv := &http.Server{Addr: s.httpAddr, Handler: mux}

	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("api listening on %s", s.httpAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.pub != nil {
		s.pub.Close()
	}
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	return nil
}
