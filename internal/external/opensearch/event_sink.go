package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/opensearch-project/opensearch-go"

	"booking-refund-service/internal/domain/refund"
)

var _ refund.EventSink = (*EventSink)(nil)

// EventSink mirrors refund lifecycle events into OpenSearch so support staff
// can search the audit trail without touching the primary database. Postgres
// stays the source of truth; this index is a projection.
type EventSink struct {
	client *opensearch.Client
	index  string
}

func NewOpenSearchEventSink(ctx context.Context, urls []string, index string) (*EventSink, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	cfg := opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	}
	client, err := opensearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	sink := &EventSink{client: client, index: index}

	// Ensure index exists with minimal mapping.
	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *EventSink) ensureIndex(ctx context.Context) error {
	// HEAD /{index}
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil // already exists
	}
	// Create index with a simple mapping.
	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"event_id":    map[string]any{"type": "keyword"},
				"refund_id":   map[string]any{"type": "keyword"},
				"kind":        map[string]any{"type": "keyword"},
				"from_status": map[string]any{"type": "keyword"},
				"to_status":   map[string]any{"type": "keyword"},
				"created_at":  map[string]any{"type": "date"},
				"data":        map[string]any{"type": "object", "enabled": true},
			},
		},
		"settings": map[string]any{
			"number_of_replicas": 0, // dev-friendly; change in prod
		},
	}
	buf, _ := json.Marshal(body)
	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

// internal doc stored in OpenSearch
type osRefundEventDoc struct {
	EventID    string          `json:"event_id"`
	RefundID   string          `json:"refund_id"`
	Kind       string          `json:"kind"`
	FromStatus string          `json:"from_status,omitempty"`
	ToStatus   string          `json:"to_status,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (s *EventSink) IndexRefundEvent(ctx context.Context, ev refund.RefundEvent) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	doc := osRefundEventDoc{
		EventID:    ev.ID,
		RefundID:   ev.RefundID,
		Kind:       string(ev.Kind),
		FromStatus: string(ev.FromStatus),
		ToStatus:   string(ev.ToStatus),
		Data:       ev.Data,
		CreatedAt:  ev.CreatedAt.UTC(),
	}
	payload, _ := json.Marshal(doc)
	res, err := s.client.Index(
		s.index,
		bytes.NewReader(payload),
		s.client.Index.WithDocumentID(ev.ID),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}
