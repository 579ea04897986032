package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"id_console_app_go/models"

	"github.com/google/uuid"
)

// RegistryClient is the console's capability against the ID registry backend.
// Handlers depend on this interface so tests can substitute a fake instead of
// a live network layer.
type RegistryClient interface {
	Constituencies(ctx context.Context) ([]models.Constituency, error)
	AdminReport(ctx context.Context, filters models.ReportFilters) (*models.ReportResult, error)
	ExportReport(ctx context.Context, filters models.ReportFilters, format string) (*Export, error)
	CreatePayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentResponse, error)
	SubmitForApproval(ctx context.Context, applicationID int) error
}

// Export is a binary export payload streamed through to the browser.
type Export struct {
	ContentType string
	Data        []byte
}

// APIError is a structured error payload returned by the registry backend.
// Its message is surfaced to the operator verbatim; transport errors are not
// APIErrors and get a generic message instead.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("registry request failed with status %d", e.StatusCode)
}

// HTTPRegistry implements RegistryClient over the registry's JSON API.
type HTTPRegistry struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPRegistry(baseURL string) *HTTPRegistry {
	return &HTTPRegistry{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Constituencies fetches the constituency reference list.
func (r *HTTPRegistry) Constituencies(ctx context.Context) ([]models.Constituency, error) {
	var payload struct {
		Constituencies []models.Constituency `json:"constituencies"`
	}
	if err := r.getJSON(ctx, "/constituencies", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Constituencies, nil
}

// AdminReport fetches the filtered record set and aggregate stats in a single
// response.
func (r *HTTPRegistry) AdminReport(ctx context.Context, filters models.ReportFilters) (*models.ReportResult, error) {
	var result models.ReportResult
	if err := r.getJSON(ctx, "/admin/reports", filters.Query(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExportReport requests a server-side export using the same filter parameters
// as AdminReport plus the format.
func (r *HTTPRegistry) ExportReport(ctx context.Context, filters models.ReportFilters, format string) (*Export, error) {
	query := filters.Query()
	query.Set("format", format)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+"/admin/reports/export?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read export payload: %w", err)
	}
	return &Export{ContentType: resp.Header.Get("Content-Type"), Data: data}, nil
}

// CreatePayment posts a payment request. Each attempt carries a fresh request
// ID so the backend can correlate retried submissions.
func (r *HTTPRegistry) CreatePayment(ctx context.Context, payment models.PaymentRequest) (*models.PaymentResponse, error) {
	body, err := json.Marshal(payment)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, decodeAPIError(resp)
	}

	var result models.PaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode payment response: %w", err)
	}
	return &result, nil
}

// SubmitForApproval transitions an application to the approval-pending state.
func (r *HTTPRegistry) SubmitForApproval(ctx context.Context, applicationID int) error {
	url := r.BaseURL + "/applications/" + strconv.Itoa(applicationID) + "/submit-for-approval"
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	return nil
}

func (r *HTTPRegistry) getJSON(ctx context.Context, path string, query interface{ Encode() string }, target interface{}) error {
	url := r.BaseURL + path
	if query != nil {
		if encoded := query.Encode(); encoded != "" {
			url += "?" + encoded
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode registry response: %w", err)
	}
	return nil
}

// decodeAPIError extracts the backend's {error} payload when present.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Message = payload.Error
	}
	return apiErr
}
