// Package invoice talks to the external tax-document issuer over HTTP.
package invoice

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	domain "course-checkout/internal/domain/invoice"
	"course-checkout/internal/infra"
	"course-checkout/internal/pkg/config"
	"course-checkout/internal/pkg/errs"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.InvoiceConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) Submit(ctx context.Context, doc domain.Document) (*domain.External, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode invoice document")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build invoice request")
	}
	req.Header.Set("Content-Type", "application/json")

	var issued domain.External
	if err := c.do(req, &issued); err != nil {
		return nil, err
	}
	return &issued, nil
}

func (c *Client) ListAll(ctx context.Context) ([]domain.External, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build invoice list request")
	}

	var invoices []domain.External
	if err := c.do(req, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *Client) Get(ctx context.Context, externalID int64) (*domain.External, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+strconv.FormatInt(externalID, 10), nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build invoice get request")
	}

	var issued domain.External
	if err := c.do(req, &issued); err != nil {
		return nil, err
	}
	return &issued, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "invoice api request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return infra.WrapRepoErr("invoice not found in external api", errs.New(resp.Status), infra.KindNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errs.New("invoice api returned " + resp.Status + ": " + string(detail))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode invoice api response")
	}
	return nil
}
