package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"id_console_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFilters = models.ReportFilters{
	StartDate:    "2024-01-01",
	EndDate:      "2024-01-07",
	Status:       "all",
	ReportType:   "applications",
	Constituency: "all",
}

func TestAdminReport(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/reports", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ReportResult{
			Applications: []models.ReportApplication{
				{ID: 1, ApplicationNumber: "APP-001", FullNames: "Jane Wanjiku", Status: "submitted"},
				{ID: 2, ApplicationNumber: "APP-002", FullNames: "John Otieno", Status: "approved"},
				{ID: 3, ApplicationNumber: "APP-003", FullNames: "Amina Hassan", Status: "collected"},
			},
			Stats: models.ReportStats{Total: 3, Pending: 1, Approved: 1, Collected: 1},
		})
	}))
	defer server.Close()

	client := NewHTTPRegistry(server.URL)
	result, err := client.AdminReport(context.Background(), testFilters)
	require.NoError(t, err)

	assert.Len(t, result.Applications, 3)
	assert.Equal(t, 3, result.Stats.Total)
	assert.Equal(t, "2024-01-01", gotQuery.Get("start_date"))
	assert.Equal(t, "2024-01-07", gotQuery.Get("end_date"))
	assert.Equal(t, "all", gotQuery.Get("status"))
	assert.Equal(t, "applications", gotQuery.Get("report_type"))
	assert.Equal(t, "all", gotQuery.Get("constituency"))
}

func TestExportUsesSameQueryParamsPlusFormat(t *testing.T) {
	var reportQuery, exportQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/reports":
			reportQuery = r.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.ReportResult{})
		case "/admin/reports/export":
			exportQuery = r.URL.Query()
			w.Header().Set("Content-Type", "text/csv")
			w.Write([]byte("application_number,status\n"))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewHTTPRegistry(server.URL)
	_, err := client.AdminReport(context.Background(), testFilters)
	require.NoError(t, err)
	export, err := client.ExportReport(context.Background(), testFilters, "csv")
	require.NoError(t, err)

	assert.Equal(t, "text/csv", export.ContentType)
	assert.Equal(t, []byte("application_number,status\n"), export.Data)

	// Export carries the exact report parameters plus format
	assert.Equal(t, "csv", exportQuery.Get("format"))
	exportQuery.Del("format")
	assert.Equal(t, reportQuery, exportQuery)
}

func TestExportReportServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid report type"})
	}))
	defer server.Close()

	client := NewHTTPRegistry(server.URL)
	_, err := client.ExportReport(context.Background(), testFilters, "pdf")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "invalid report type", apiErr.Message)
}

func TestConstituencies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/constituencies", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"constituencies": [{"id": 1, "name": "Westlands"}, {"id": 2, "name": "Langata"}]}`))
	}))
	defer server.Close()

	client := NewHTTPRegistry(server.URL)
	constituencies, err := client.Constituencies(context.Background())
	require.NoError(t, err)
	require.Len(t, constituencies, 2)
	assert.Equal(t, "Westlands", constituencies[0].Name)
}

func TestCreatePayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body models.PaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 42, body.ApplicationID)
		assert.Equal(t, 1000, body.Amount)
		assert.Equal(t, models.PaymentMethodMpesa, body.PaymentMethod)
		assert.Equal(t, "0712345678", body.PhoneNumber)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.PaymentResponse{PaymentID: 7})
	}))
	defer server.Close()

	client := NewHTTPRegistry(server.URL)
	resp, err := client.CreatePayment(context.Background(), models.PaymentRequest{
		ApplicationID: 42,
		Amount:        1000,
		PaymentMethod: models.PaymentMethodMpesa,
		PhoneNumber:   "0712345678",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.PaymentID)
}

func TestCreatePaymentServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]string{"error": "insufficient funds"})
	}))
	defer server.Close()

	client := NewHTTPRegistry(server.URL)
	_, err := client.CreatePayment(context.Background(), models.PaymentRequest{ApplicationID: 1, Amount: 1000, PaymentMethod: models.PaymentMethodCash})
	require.Error(t, err)
	assert.Equal(t, "insufficient funds", err.Error())
}

func TestCreatePaymentConnectivityFailure(t *testing.T) {
	// Point at a closed server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewHTTPRegistry(server.URL)
	_, err := client.CreatePayment(context.Background(), models.PaymentRequest{ApplicationID: 1, Amount: 1000, PaymentMethod: models.PaymentMethodCash})
	require.Error(t, err)
	_, isAPIErr := err.(*APIError)
	assert.False(t, isAPIErr, "transport failures must not masquerade as backend errors")
}

func TestSubmitForApproval(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/applications/42/submit-for-approval", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewHTTPRegistry(server.URL)
	require.NoError(t, client.SubmitForApproval(context.Background(), 42))
	assert.True(t, called)
}

func TestSubmitForApprovalFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "application is not pending payment"})
	}))
	defer server.Close()

	client := NewHTTPRegistry(server.URL)
	err := client.SubmitForApproval(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not pending payment")
}
