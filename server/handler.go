package server

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/maddiravi/academia-analyzer-agent/core"
	"github.com/maddiravi/academia-analyzer-agent/ingestion"
	"github.com/maddiravi/academia-analyzer-agent/pipeline"
)

// analyzeResponse mirrors a pipeline result for the wire. Stage errors become
// strings so partial outcomes serialize cleanly.
type analyzeResponse struct {
	Filename   string        `json:"filename"`
	Phase      string        `json:"phase"`
	ChunkCount int           `json:"chunk_count"`
	Thesis     *core.Thesis  `json:"thesis_data,omitempty"`
	Summary    *core.Summary `json:"summary_output,omitempty"`
	Errors     stageErrors   `json:"errors"`
	ElapsedMS  int64         `json:"elapsed_ms"`
}

type stageErrors struct {
	Run        string `json:"run,omitempty"`
	Extraction string `json:"extraction,omitempty"`
	Synthesis  string `json:"synthesis,omitempty"`
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// handleAnalyze accepts one uploaded document under the "document" form field,
// runs the pipeline on a pool worker, and returns the complete outcome. The
// uploaded file is removed when the run finishes.
func (s *Server) handleAnalyze(c *gin.Context) {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing form file \"document\""})
		return
	}

	// Keep the original extension; the loader routes by it.
	saved := filepath.Join(s.cfg.UploadDir, uuid.NewString()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, saved); err != nil {
		s.logger.Error("failed to save upload", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}

	start := time.Now()
	done := make(chan *pipeline.Result, 1)
	submitErr := s.pool.Submit(func() {
		result := s.pipeline.Run(c.Request.Context(), saved)
		// Remove the upload before handing the result back so callers never
		// observe the file after the response.
		os.Remove(saved)
		done <- result
	})
	if submitErr != nil {
		os.Remove(saved)
		s.logger.Warn("analysis pool rejected submission", "err", submitErr)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analyzer is shutting down"})
		return
	}

	result := <-done

	status := http.StatusOK
	switch {
	case errors.Is(result.Err, ingestion.ErrUnsupportedFormat):
		status = http.StatusUnsupportedMediaType
	case result.Err != nil:
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, analyzeResponse{
		Filename:   fileHeader.Filename,
		Phase:      result.Phase.String(),
		ChunkCount: result.ChunkCount,
		Thesis:     result.Thesis,
		Summary:    result.Summary,
		Errors: stageErrors{
			Run:        errText(result.Err),
			Extraction: errText(result.ThesisErr),
			Synthesis:  errText(result.SummaryErr),
		},
		ElapsedMS: time.Since(start).Milliseconds(),
	})
}
