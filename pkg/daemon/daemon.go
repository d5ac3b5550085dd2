// Package daemon keeps calstatus resident: a cron scheduler re-runs
// the status pipeline and a small HTTP API over a unix socket exposes
// the latest result to the CLI.
package daemon

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mvdberg/calstatus/pkg/config"
	"github.com/mvdberg/calstatus/pkg/events"
	"github.com/mvdberg/calstatus/pkg/pipeline"
)

// Server owns the daemon's mutable state: the most recent pipeline
// result and the scheduler driving new runs.
type Server struct {
	conf   *config.File
	runner *pipeline.Runner
	hub    *events.EventHub
	sched  *Scheduler

	mu   sync.RWMutex
	last *pipeline.Result
}

func NewServer(conf *config.File, runner *pipeline.Runner) *Server {
	s := &Server{
		conf:   conf,
		runner: runner,
		hub:    events.NewEventHub(),
	}
	s.sched = NewScheduler(s.runOnce, func(data any) {
		logrus.Errorf("scheduled update failed: %v", data)
	})
	return s
}

// runOnce executes the pipeline with pushing enabled, retains the
// result, and notifies subscribers.
func (s *Server) runOnce() error {
	result, err := s.runner.Run(context.Background(), false)
	if result != nil {
		s.mu.Lock()
		s.last = result
		s.mu.Unlock()

		s.hub.Publish(events.StatusUpdated, events.StatusUpdatedEvent{
			Text:     result.Status.Text,
			Emoji:    result.Status.Emoji,
			Density:  string(result.Analysis.Density),
			Activity: string(result.Analysis.CurrentActivity),
			Pushed:   result.Pushed,
			Ts:       time.Now().Unix(),
		})
	}
	return err
}

func (s *Server) lastResult() *pipeline.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

func (s *Server) setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.GET("/analysis", s.getAnalysis)
	router.GET("/status", s.getStatusPreview)
	router.GET("/last", s.getLast)
	router.POST("/update", s.postUpdate)
	router.GET("/schedule", s.getSchedule)
	router.POST("/schedule/skip", s.postScheduleSkip)
	router.GET("/config", s.getConfig)
	router.GET("/version", getVersion)
	router.GET("/events", s.streamEvents)

	return router
}

// Run serves the daemon until SIGINT/SIGTERM. SIGHUP reloads config.
func Run(conf *config.File, runner *pipeline.Runner, socketPath string) error {
	srv := NewServer(conf, runner)
	router := srv.setupRoutes()

	logrus.WithFields(conf.LogrusFields()).Info("config loaded")

	if schedule := conf.Schedule(); schedule != "" {
		if err := srv.sched.Schedule(schedule); err != nil {
			return err
		}
		srv.sched.Start()
		next, _ := srv.sched.Status()
		logrus.WithField("nextRun", next).Infof("scheduled updates every %q", schedule)
	}

	// Receive SIGHUP to reload config
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGHUP)
		for range sigc {
			if err := conf.Load(); err != nil {
				logrus.Errorf("failed to reload config: %v", err)
				continue
			}
			if schedule := conf.Schedule(); schedule != "" {
				if err := srv.sched.Schedule(schedule); err != nil {
					logrus.Errorf("failed to reschedule: %v", err)
				}
			}
			logrus.Info("config reloaded")
		}
	}()

	httpSrv := &http.Server{Handler: router}

	// A stale socket from an unclean shutdown blocks the listener.
	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	l, err := net.Listen("unix", socketPath)
	if err != nil {
		return err
	}

	go func() {
		logrus.Infof("http server listening on %s", l.Addr().String())
		if err := httpSrv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	// Push a first status right away instead of waiting a full
	// schedule interval.
	go func() {
		if err := srv.runOnce(); err != nil {
			logrus.Errorf("initial update failed: %v", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc
	logrus.Infof("caught signal %q: shutting down", sig)

	srv.sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		logrus.Errorf("failed to shutdown http server: %v", err)
	}

	logrus.Info("exiting")
	return nil
}
