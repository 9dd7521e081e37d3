package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequest captures one call to an LLM provider, for diagnostics.
type LLMRequest struct {
	ID           int64
	CreatedAt    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo appends diagnostics events. Appends are best-effort from the
// caller's point of view: a failed append is logged, never propagated
// into the request path.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, req LLMRequest) error

	// LLMRequestCount returns the total number of recorded requests,
	// optionally filtered by purpose ("" matches all).
	LLMRequestCount(ctx context.Context, purpose string) (int, error)

	// RecentLLMRequests returns the most recent requests, newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequest, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, req LLMRequest) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_requests
		 (provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.Provider, req.Model, req.Purpose,
		req.InputTokens, req.OutputTokens, req.LatencyMs,
		req.Success, req.ErrorMessage, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

func (r *eventRepo) LLMRequestCount(ctx context.Context, purpose string) (int, error) {
	query := `SELECT COUNT(*) FROM llm_requests`
	args := []any{}
	if purpose != "" {
		query += ` WHERE purpose = ?`
		args = append(args, purpose)
	}

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count llm requests: %w", err)
	}
	return n, nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at
		 FROM llm_requests ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm requests: %w", err)
	}
	defer rows.Close()

	var reqs []LLMRequest
	for rows.Next() {
		var req LLMRequest
		if err := rows.Scan(&req.ID, &req.Provider, &req.Model, &req.Purpose,
			&req.InputTokens, &req.OutputTokens, &req.LatencyMs,
			&req.Success, &req.ErrorMessage, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan llm request: %w", err)
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
