package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"Recipe-Publisher/domain"
	"Recipe-Publisher/internal/utils"
)

type (
	Config struct {
		ProjectID  string
		Dataset    string
		Token      string
		APIVersion string
		UseCDN     bool
		// BaseURL replaces the project host, e.g. for a local proxy.
		BaseURL string
	}

	CreateResult struct {
		ID       string          `json:"id"`
		Document json.RawMessage `json:"document"`
	}

	Client interface {
		Fetch(ctx context.Context, query string, params map[string]interface{}, out interface{}) error
		Create(ctx context.Context, doc interface{}) (CreateResult, error)
		ProjectID() string
		Dataset() string
	}

	client struct {
		cfg        Config
		httpClient *http.Client
	}
)

func LoadConfig() Config {
	return Config{
		ProjectID:  utils.GetConfig("SANITY_PROJECT_ID"),
		Dataset:    utils.GetConfig("SANITY_DATASET"),
		Token:      utils.GetConfig("SANITY_TOKEN"),
		APIVersion: utils.GetConfig("SANITY_API_VERSION"),
		UseCDN:     utils.GetBoolConfig("SANITY_USE_CDN"),
	}
}

func NewClient(cfg Config, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if !strings.HasPrefix(cfg.APIVersion, "v") {
		cfg.APIVersion = "v" + cfg.APIVersion
	}
	return &client{cfg: cfg, httpClient: httpClient}
}

func (c *client) ProjectID() string {
	return c.cfg.ProjectID
}

func (c *client) Dataset() string {
	return c.cfg.Dataset
}

// Fetch runs a GROQ query and decodes its result into out. Each params entry is sent
// as a $name query parameter holding the JSON encoded value.
func (c *client) Fetch(ctx context.Context, query string, params map[string]interface{}, out interface{}) error {
	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode query param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/%s/data/query/%s?%s", c.host(true), c.cfg.APIVersion, c.cfg.Dataset, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create query request: %w", err)
	}
	c.authorize(req)

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := c.do(req, &envelope); err != nil {
		return err
	}
	if out == nil || len(envelope.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("decode query result: %w", err)
	}
	return nil
}

// Create writes doc as a new document and returns the created id and document.
func (c *client) Create(ctx context.Context, doc interface{}) (CreateResult, error) {
	body := map[string]interface{}{
		"mutations": []map[string]interface{}{
			{"create": doc},
		},
	}
	requestJSON, err := json.Marshal(body)
	if err != nil {
		return CreateResult{}, fmt.Errorf("encode mutation: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/data/mutate/%s?returnIds=true&returnDocuments=true", c.host(false), c.cfg.APIVersion, c.cfg.Dataset)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return CreateResult{}, fmt.Errorf("failed to create mutation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	var mutateResp struct {
		Results []CreateResult `json:"results"`
	}
	if err := c.do(req, &mutateResp); err != nil {
		return CreateResult{}, err
	}
	if len(mutateResp.Results) == 0 {
		return CreateResult{}, fmt.Errorf("content store returned no mutation results")
	}
	return mutateResp.Results[0], nil
}

func (c *client) host(read bool) string {
	if c.cfg.BaseURL != "" {
		return strings.TrimRight(c.cfg.BaseURL, "/")
	}
	api := "api"
	if read && c.cfg.UseCDN && c.cfg.Token == "" {
		api = "apicdn"
	}
	return fmt.Sprintf("https://%s.%s.sanity.io", c.cfg.ProjectID, api)
}

func (c *client) authorize(req *http.Request) {
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
}

func (c *client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("content store request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return statusError(resp.StatusCode, bodyBytes)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode content store response: %w", err)
	}
	return nil
}

func statusError(status int, body []byte) error {
	msg := errorMessage(body)
	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrStoreUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrStorePermission, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrStoreNotFound, msg)
	default:
		return fmt.Errorf("content store error: %d - %s", status, msg)
	}
}

// errorMessage pulls a readable message out of the store's error body, which is
// either {"error": "...", "message": "..."} or {"error": {"description": "..."}}.
func errorMessage(body []byte) string {
	var parsed struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return strings.TrimSpace(string(body))
	}
	if parsed.Message != "" {
		return parsed.Message
	}

	var detail struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(parsed.Error, &detail); err == nil && detail.Description != "" {
		return detail.Description
	}
	var plain string
	if err := json.Unmarshal(parsed.Error, &plain); err == nil && plain != "" {
		return plain
	}
	return strings.TrimSpace(string(body))
}
