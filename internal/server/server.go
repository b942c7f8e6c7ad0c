// Package server exposes the projection engine as a stateless JSON API for
// browser front ends.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/airoi/roi-calculator/internal/benchmark"
	"github.com/airoi/roi-calculator/internal/calculation"
	"github.com/airoi/roi-calculator/internal/config"
	"github.com/airoi/roi-calculator/internal/domain"
	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type impactResponse struct {
	Departments []domain.DepartmentImpact `json:"departments"`
	Total       domain.TotalImpact        `json:"total"`
}

// Handler routes API requests to the calculator.
type Handler struct {
	calc       *calculation.ImpactCalculator
	parser     *config.InputParser
	benchmarks *benchmark.Table
	logger     *zap.Logger
}

// NewHandler constructs the API handler. A nil table serves the built-in
// industries.
func NewHandler(logger *zap.Logger, benchmarks *benchmark.Table) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if benchmarks == nil {
		benchmarks = benchmark.Default()
	}
	calc := calculation.NewImpactCalculator(benchmarks)
	calc.SetLogger(logger.Sugar())
	return &Handler{
		calc:       calc,
		parser:     config.NewInputParser(benchmarks),
		benchmarks: benchmarks,
		logger:     logger,
	}
}

// Handle is the fasthttp request handler.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	switch path {
	case "/api/health":
		if h.requireMethod(ctx, fasthttp.MethodGet) {
			h.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		}
	case "/api/industries":
		if h.requireMethod(ctx, fasthttp.MethodGet) {
			h.writeJSON(ctx, fasthttp.StatusOK, h.benchmarks.Industries())
		}
	case "/api/impact":
		h.withInput(ctx, func(in *domain.AnalysisInput) any {
			resp := impactResponse{
				Departments: make([]domain.DepartmentImpact, 0, len(in.Departments)),
				Total:       h.calc.CalculateTotalImpact(in.Departments, in.AdoptionRate, in.TimeHorizon, in.IndustryID),
			}
			for _, d := range in.Departments {
				resp.Departments = append(resp.Departments, h.calc.CalculateDepartmentImpact(d, in.AdoptionRate, in.TimeHorizon, in.IndustryID))
			}
			return resp
		})
	case "/api/timeline":
		h.withInput(ctx, func(in *domain.AnalysisInput) any {
			return h.calc.GenerateTimelineData(in.Departments, in.AdoptionRate, in.TimeHorizon, in.InvestmentCost, in.IndustryID)
		})
	case "/api/report":
		h.withInput(ctx, func(in *domain.AnalysisInput) any {
			return h.calc.BuildReport(in)
		})
	default:
		h.writeError(ctx, fasthttp.StatusNotFound, "Not found: "+path)
	}

	h.logger.Debug("request handled",
		zap.String("op", "server.Handle"),
		zap.String("method", string(ctx.Method())),
		zap.String("path", path),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)
}

func (h *Handler) withInput(ctx *fasthttp.RequestCtx, run func(*domain.AnalysisInput) any) {
	if !h.requireMethod(ctx, fasthttp.MethodPost) {
		return
	}

	var input domain.AnalysisInput
	if err := json.Unmarshal(ctx.PostBody(), &input); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.parser.Prepare(&input); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(ctx, fasthttp.StatusOK, run(&input))
}

func (h *Handler) requireMethod(ctx *fasthttp.RequestCtx, method string) bool {
	if string(ctx.Method()) == method {
		return true
	}
	ctx.Response.Header.Set("Allow", method)
	h.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
	return false
}

func (h *Handler) writeJSON(ctx *fasthttp.RequestCtx, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
		status = fasthttp.StatusInternalServerError
		body = []byte(`{"status":500,"message":"failed to encode response"}`)
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	h.writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}

// ListenAndServe serves the handler on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, h *Handler, maxRequestBody int) error {
	srv := &fasthttp.Server{
		Handler:            h.Handle,
		Name:               "roicalc",
		MaxRequestBodySize: maxRequestBody,
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("API server starting", zap.String("op", "server.ListenAndServe"), zap.String("addr", addr))
		errCh <- srv.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	}
}
