package daemon

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvdberg/calstatus/pkg/version"
)

func (s *Server) getAnalysis(c *gin.Context) {
	result, err := s.runner.Run(c.Request.Context(), true)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.IndentedJSON(http.StatusOK, result.Analysis)
}

// getStatusPreview composes a fresh status without pushing it.
func (s *Server) getStatusPreview(c *gin.Context) {
	result, err := s.runner.Run(c.Request.Context(), true)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.IndentedJSON(http.StatusOK, result)
}

func (s *Server) getLast(c *gin.Context) {
	last := s.lastResult()
	if last == nil {
		c.IndentedJSON(http.StatusNotFound, "no update has completed yet")
		return
	}
	c.IndentedJSON(http.StatusOK, last)
}

func (s *Server) postUpdate(c *gin.Context) {
	if err := s.runOnce(); err != nil {
		c.IndentedJSON(http.StatusBadGateway, err.Error())
		_ = c.AbortWithError(http.StatusBadGateway, err)
		return
	}
	c.IndentedJSON(http.StatusOK, s.lastResult())
}

type scheduleInfo struct {
	Schedule string `json:"schedule"`
	NextRun  string `json:"nextRun,omitempty"`
	Running  bool   `json:"running"`
}

func (s *Server) getSchedule(c *gin.Context) {
	next, running := s.sched.Status()
	info := scheduleInfo{
		Schedule: s.conf.Schedule(),
		Running:  running,
	}
	if !next.IsZero() {
		info.NextRun = next.String()
	}
	c.IndentedJSON(http.StatusOK, info)
}

func (s *Server) postScheduleSkip(c *gin.Context) {
	if err := s.sched.Skip(); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}
	next, _ := s.sched.Status()
	c.IndentedJSON(http.StatusOK, "next run skipped, now at "+next.String())
}

// getConfig reports the sanitized config: secrets are reduced to
// set/unset markers.
func (s *Server) getConfig(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, s.conf.LogrusFields())
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{
		"version":   version.Version,
		"gitCommit": version.GitCommit,
	})
}

func (s *Server) streamEvents(c *gin.Context) {
	ch := s.hub.Subscribe()
	defer s.hub.Unsubscribe(ch)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(_ io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, string(ev.Data))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
