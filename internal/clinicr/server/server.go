// Package server exposes an immutable dataset snapshot as a read-only JSON
// API. Handlers only read; the dataset is never mutated after startup.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/generate"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/logger"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/store"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/verify"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 20 * time.Second
	shutdownTimeout     = 5 * time.Second
)

// Options configures the listener. Zero timeouts take the defaults.
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Server struct {
	store       *store.Store
	fingerprint *verify.Fingerprint
	metrics     *Metrics
	router      chi.Router
	srv         http.Server
}

// New builds the server over ds. The fingerprint is computed once here.
func New(ds *generate.Dataset, opts Options) (*Server, error) {
	fp, err := verify.ComputeFingerprint(ds)
	if err != nil {
		return nil, fmt.Errorf("fingerprint dataset: %w", err)
	}
	s := &Server{
		store:       store.New(ds),
		fingerprint: fp,
		metrics:     NewMetrics("clinicr"),
	}
	for _, c := range fp.Collections {
		s.metrics.SetCollection(c.Name, c.Count)
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = defaultReadTimeout
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}
	s.router = s.routes()
	s.srv = http.Server{
		Addr:         opts.Addr,
		Handler:      s.router,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}
	return s, nil
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		s.metrics.Middleware,
	)
	r.Get("/healthz", s.getHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/meta", s.getMeta)
		r.Get("/fingerprint", s.getFingerprint)
		r.Get("/dashboard", s.getDashboard)

		r.Get("/providers", s.listProviders)
		r.Get("/providers/{id}", s.getProvider)

		r.Route("/patients", func(r chi.Router) {
			r.Get("/", s.listPatients)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getPatient)
				r.Get("/appointments", s.patientAppointments)
				r.Get("/clinical-notes", s.patientClinicalNotes)
				r.Get("/immunizations", s.patientImmunizations)
				r.Get("/lab-results", s.patientLabResults)
				r.Get("/claims", s.patientClaims)
				r.Get("/visit-stats", s.patientVisitStats)
			})
		})

		r.Get("/appointments", s.listAppointments)
		r.Get("/appointments/{id}", s.getAppointment)
		r.Get("/clinical-notes", s.listClinicalNotes)
		r.Get("/clinical-notes/{id}", s.getClinicalNote)
		r.Get("/medications", s.listMedications)
		r.Get("/allergies", s.listAllergies)
		r.Get("/problems", s.listProblems)
		r.Get("/lab-results", s.listLabResults)
		r.Get("/lab-results/{id}", s.getLabResult)
		r.Get("/claims", s.listClaims)
		r.Get("/claims/{id}", s.getClaim)
		r.Get("/claims/{id}/payments", s.claimPayments)
		r.Get("/payments", s.listPayments)
		r.Get("/payments/{id}", s.getPayment)

		r.Get("/billing/summary", s.getBillingSummary)
		r.Get("/labs/stats", s.getLabStats)
		r.Get("/compliance/india", s.getIndiaCompliance)
		r.Get("/compliance/qatar", s.getQatarCompliance)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "route not found")
	})
	return r
}

// LogRoutes logs every registered route at debug level.
func (s *Server) LogRoutes() error {
	var routes []string
	walker := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, method+" "+route)
		return nil
	}
	if err := chi.Walk(s.router, walker); err != nil {
		return fmt.Errorf("walk routes: %w", err)
	}
	logger.L().Debugw("server.routes", "count", len(routes), "routes", strings.Join(routes, ", "))
	return nil
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		logger.L().Infow("Serving dataset", "addr", s.srv.Addr, "head", s.fingerprint.Head)
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.L().Infow("Shutting down server", "addr", s.srv.Addr)
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
