// Package esx wires Elasticsearch for interpretation full-text search.
package esx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	es8 "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"tracker-studio-api/internal/config"
	"tracker-studio-api/internal/tracker"
)

type Client = es8.Client

// DefaultIndex is where interpretation documents live.
const DefaultIndex = "interpretations"

func Open(cfg *config.Config) (*Client, func(), error) {
	if strings.TrimSpace(cfg.ES.Addrs) == "" {
		return nil, func() {}, nil
	}
	raw := strings.Split(cfg.ES.Addrs, ",")
	addrs := lo.FilterMap(raw, func(s string, _ int) (string, bool) {
		t := strings.TrimSpace(s)
		return t, t != ""
	})
	es, err := es8.NewClient(es8.Config{Addresses: addrs, Username: cfg.ES.Username, Password: cfg.ES.Password})
	if err != nil {
		return nil, func() {}, err
	}
	return es, func() {}, nil
}

// InterpretationDoc is the searchable projection of an interpretation note.
type InterpretationDoc struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	TrackerID string `json:"tracker_id"`
	Body      string `json:"body"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	CreatedAt string `json:"created_at"`
}

// DocFromInterpretation projects a domain interpretation into its document.
func DocFromInterpretation(i *tracker.Interpretation) InterpretationDoc {
	return InterpretationDoc{
		ID:        i.ID.String(),
		OwnerID:   i.OwnerID.String(),
		TrackerID: i.TrackerID.String(),
		Body:      i.Body,
		StartDate: i.StartDate,
		EndDate:   i.EndDate,
		CreatedAt: i.CreatedAt.Format(time.RFC3339),
	}
}

// IndexInterpretation upserts one document. A nil client is a no-op so search
// stays optional.
func IndexInterpretation(ctx context.Context, es *Client, index string, doc InterpretationDoc) error {
	if es == nil {
		return nil
	}
	b, _ := json.Marshal(doc)
	res, err := es.Index(index, bytes.NewReader(b), es.Index.WithDocumentID(doc.ID), es.Index.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return fmtError(res)
	}
	return nil
}

// DeleteInterpretation removes one document; missing documents are not an
// error.
func DeleteInterpretation(ctx context.Context, es *Client, index string, id uuid.UUID) error {
	if es == nil {
		return nil
	}
	res, err := es.Delete(index, id.String(), es.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest && res.StatusCode != http.StatusNotFound {
		return fmtError(res)
	}
	return nil
}

// SearchInterpretations runs a full-text query over one owner's notes. The
// owner filter is mandatory: search never crosses ownership.
func SearchInterpretations(ctx context.Context, es *Client, index string, ownerID uuid.UUID, query string, from, size int) (map[string]any, error) {
	if es == nil {
		return map[string]any{"hits": []any{}}, nil
	}
	q := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"filter": []any{
					map[string]any{"term": map[string]any{"owner_id": ownerID.String()}},
				},
				"must": map[string]any{
					"match": map[string]any{"body": query},
				},
			},
		},
	}
	b, _ := json.Marshal(q)
	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(bytes.NewReader(b)),
		es.Search.WithFrom(from),
		es.Search.WithSize(size),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return nil, fmtError(res)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	return out, nil
}

func fmtError(res *esapi.Response) error { return fmt.Errorf("es error: %s", res.String()) }
