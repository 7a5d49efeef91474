package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rezonia/orderx/internal/builder"
	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/orderfile"
	"github.com/rezonia/orderx/internal/orderxml"
	"github.com/rezonia/orderx/internal/packager"
	"github.com/rezonia/orderx/internal/profile"
)

const requestIDHeader = "X-Request-ID"

// Config holds server configuration
type Config struct {
	Address      string
	Profile      string
	Creator      string
	MaxBodyBytes int64
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
	Logger       *slog.Logger
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	packager *packager.Packager
	logger   *slog.Logger
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = 32 << 20
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config: config,
		router: router,
		packager: packager.New(
			packager.WithCreator(config.Creator),
			packager.WithLogger(logger),
		),
		logger: logger,
	}
	router.Use(s.requestID)

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/profiles", s.handleProfiles)

		// Build endpoints
		v1.POST("/orders/xml", s.handleBuildXML)
		v1.POST("/orders/pdf", s.handleBuildPDF)

		// Inspection endpoints
		v1.POST("/info", s.handleInfo)
		v1.POST("/validate", s.handleValidate)
	}
}

// Run starts the HTTP server and shuts it down gracefully once ctx is done
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "address", s.config.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("request_id", id)
	c.Header(requestIDHeader, id)

	start := time.Now()
	c.Next()
	s.logger.Info("request",
		"request_id", id,
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"duration", time.Since(start))
}

func (s *Server) fail(c *gin.Context, status int, msg string, err error) {
	resp := ErrorResponse{Error: msg, RequestID: c.GetString("request_id")}
	if err != nil {
		resp.Details = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}

// failFor maps err onto a status code
func (s *Server) failFor(c *gin.Context, msg string, err error) {
	var pe *model.ParseError
	var ee *model.ExtractionError
	switch {
	case errors.As(err, &pe), errors.As(err, &ee):
		s.fail(c, http.StatusUnprocessableEntity, msg, err)
	default:
		s.logger.Error(msg, "request_id", c.GetString("request_id"), "error", err)
		s.fail(c, http.StatusInternalServerError, msg, err)
	}
}

func (s *Server) body(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, s.config.MaxBodyBytes))
	if err != nil {
		s.fail(c, http.StatusBadRequest, "failed to read request body", err)
		return nil, false
	}
	if len(body) == 0 {
		s.fail(c, http.StatusBadRequest, "empty request body", nil)
		return nil, false
	}
	return body, true
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleProfiles(c *gin.Context) {
	var resp ProfilesResponse
	for _, d := range profile.All() {
		resp.Profiles = append(resp.Profiles, ProfileInfo{
			Name:           d.Name,
			DisplayName:    d.DisplayName,
			GuidelineID:    d.GuidelineID,
			XSDFile:        d.XSDFile,
			SchematronFile: d.SchematronFile,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// buildOrder replays a definition. The profile query parameter overrides the
// definition, the server default fills in when both are empty.
func (s *Server) buildOrder(c *gin.Context, data []byte) (*builder.Builder, bool) {
	def, err := orderfile.Parse(data)
	if err != nil {
		s.failFor(c, "invalid order definition", err)
		return nil, false
	}
	if p := c.Query("profile"); p != "" {
		def.Profile = p
	} else if def.Profile == "" {
		def.Profile = s.config.Profile
	}
	b, err := def.Build()
	if err != nil {
		s.failFor(c, "invalid order definition", err)
		return nil, false
	}
	return b, true
}

func (s *Server) handleBuildXML(c *gin.Context) {
	body, ok := s.body(c)
	if !ok {
		return
	}
	b, ok := s.buildOrder(c, body)
	if !ok {
		return
	}
	out, err := b.XML()
	if err != nil {
		s.failFor(c, "serialization failed", err)
		return
	}
	c.Header("X-Order-Profile", b.Definition().DisplayName)
	c.Data(http.StatusOK, "application/xml; charset=utf-8", out)
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// formBytes reads a multipart field sent either as file or as plain value
func (s *Server) formBytes(c *gin.Context, name string) ([]byte, error) {
	if fh, err := c.FormFile(name); err == nil {
		return readPart(fh)
	}
	if v, ok := c.GetPostForm(name); ok && v != "" {
		return []byte(v), nil
	}
	return nil, fmt.Errorf("missing form field %q", name)
}

func (s *Server) handleBuildPDF(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.config.MaxBodyBytes)

	definition, err := s.formBytes(c, "order")
	if err != nil {
		s.fail(c, http.StatusBadRequest, "order definition required", err)
		return
	}
	pdf, err := s.formBytes(c, "pdf")
	if err != nil {
		s.fail(c, http.StatusBadRequest, "pdf required", err)
		return
	}

	b, ok := s.buildOrder(c, definition)
	if !ok {
		return
	}
	out, err := s.packager.Generate(b, packager.SourceBytes(pdf))
	if err != nil {
		s.failFor(c, "pdf generation failed", err)
		return
	}

	name := "order.pdf"
	if id := b.Order().Document.ID; id != nil {
		name = id.Value + ".pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/pdf", out)
}

func (s *Server) handleInfo(c *gin.Context) {
	body, ok := s.body(c)
	if !ok {
		return
	}
	doc, err := orderxml.Read(body)
	if err != nil {
		s.failFor(c, "not an order document", err)
		return
	}
	c.JSON(http.StatusOK, InfoResponse{
		Summary: orderxml.Summarize(doc),
		Size:    len(body),
	})
}

func (s *Server) handleValidate(c *gin.Context) {
	body, ok := s.body(c)
	if !ok {
		return
	}
	doc, err := orderxml.Read(body)
	if err != nil {
		issue := ValidationIssue{Field: "document", Rule: "parse", Message: err.Error()}
		var perr *model.ParseError
		if errors.As(err, &perr) {
			issue.Field = perr.Field
		}
		c.JSON(http.StatusUnprocessableEntity, ValidationResponse{
			Valid:  false,
			Errors: []ValidationIssue{issue},
		})
		return
	}

	errs, warnings := validateOrder(doc)
	c.JSON(http.StatusOK, ValidationResponse{
		Valid:    len(errs) == 0,
		Profile:  doc.Definition().DisplayName,
		Errors:   issues(errs),
		Warnings: issues(warnings),
	})
}

// validateOrder checks the facts needed for packaging and a few plausibility
// rules. It is no substitute for schema validation.
func validateOrder(doc *orderxml.Document) (errs, warnings []*model.ValidationError) {
	o := doc.Order()
	if _, err := packager.ExtractOrderInfo(o); err != nil {
		msg := err.Error()
		var ee *model.ExtractionError
		if errors.As(err, &ee) {
			msg = ee.Message
		}
		errs = append(errs, model.NewValidationError("packaging", nil, "required", msg))
	}

	if a := o.Transaction.Agreement; a == nil || a.Buyer == nil {
		warnings = append(warnings, model.NewValidationError("buyer", nil, "recommended", "missing buyer"))
	}
	if len(o.Transaction.LineItems) == 0 {
		warnings = append(warnings, model.NewValidationError("lines", 0, "min_count", "order has no line items"))
	}
	if st := o.Transaction.Settlement; st == nil || st.MonetarySummation == nil || st.MonetarySummation.GrandTotalAmount == nil {
		warnings = append(warnings, model.NewValidationError("grand_total", nil, "recommended", "grand total is missing"))
	}
	return errs, warnings
}

func issues(errs []*model.ValidationError) []ValidationIssue {
	out := make([]ValidationIssue, 0, len(errs))
	for _, e := range errs {
		out = append(out, ValidationIssue{Field: e.Field, Rule: e.Rule, Message: e.Message})
	}
	return out
}
