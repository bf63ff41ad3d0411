package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/prepmate/ent"
	"github.com/abhisek/prepmate/ent/llmrequest"
)

// LLMRequestData captures a single LLM API call for the request log.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestRecord is a stored LLM request log entry.
type LLMRequestRecord struct {
	ID        int
	CreatedAt time.Time
	LLMRequestData
}

// LLMRequestRepo provides append and query access to the LLM request log.
type LLMRequestRepo interface {
	// Append records an LLM API call.
	Append(ctx context.Context, data LLMRequestData) error

	// Recent returns the most recent entries, newest first.
	Recent(ctx context.Context, limit int) ([]LLMRequestRecord, error)

	// PruneBefore deletes entries older than cutoff and returns the count.
	PruneBefore(ctx context.Context, cutoff time.Time) (int, error)
}

type llmRequestRepo struct {
	client *ent.Client
}

func (r *llmRequestRepo) Append(ctx context.Context, data LLMRequestData) error {
	_, err := r.client.LLMRequest.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request: %w", err)
	}
	return nil
}

func (r *llmRequestRepo) Recent(ctx context.Context, limit int) ([]LLMRequestRecord, error) {
	q := r.client.LLMRequest.Query().
		Order(ent.Desc(llmrequest.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm requests: %w", err)
	}

	records := make([]LLMRequestRecord, len(rows))
	for i, row := range rows {
		records[i] = LLMRequestRecord{
			ID:        row.ID,
			CreatedAt: row.CreatedAt,
			LLMRequestData: LLMRequestData{
				Provider:     row.Provider,
				Model:        row.Model,
				Purpose:      row.Purpose,
				InputTokens:  row.InputTokens,
				OutputTokens: row.OutputTokens,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
			},
		}
	}
	return records, nil
}

func (r *llmRequestRepo) PruneBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := r.client.LLMRequest.Delete().
		Where(llmrequest.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune llm requests: %w", err)
	}
	return n, nil
}
