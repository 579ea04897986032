package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"id_console_app_go/config"
	"id_console_app_go/models"
	"id_console_app_go/services"
	"id_console_app_go/view"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// fakeRegistry substitutes the backend API; unset operations fail the test if
// they are called.
type fakeRegistry struct {
	t *testing.T

	constituenciesFn    func(ctx context.Context) ([]models.Constituency, error)
	adminReportFn       func(ctx context.Context, filters models.ReportFilters) (*models.ReportResult, error)
	exportReportFn      func(ctx context.Context, filters models.ReportFilters, format string) (*services.Export, error)
	createPaymentFn     func(ctx context.Context, req models.PaymentRequest) (*models.PaymentResponse, error)
	submitForApprovalFn func(ctx context.Context, applicationID int) error

	paymentCalls  int
	approvalCalls int
}

func (f *fakeRegistry) Constituencies(ctx context.Context) ([]models.Constituency, error) {
	if f.constituenciesFn == nil {
		return nil, nil
	}
	return f.constituenciesFn(ctx)
}

func (f *fakeRegistry) AdminReport(ctx context.Context, filters models.ReportFilters) (*models.ReportResult, error) {
	if f.adminReportFn == nil {
		f.t.Fatal("unexpected AdminReport call")
	}
	return f.adminReportFn(ctx, filters)
}

func (f *fakeRegistry) ExportReport(ctx context.Context, filters models.ReportFilters, format string) (*services.Export, error) {
	if f.exportReportFn == nil {
		f.t.Fatal("unexpected ExportReport call")
	}
	return f.exportReportFn(ctx, filters, format)
}

func (f *fakeRegistry) CreatePayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentResponse, error) {
	f.paymentCalls++
	if f.createPaymentFn == nil {
		f.t.Fatal("unexpected CreatePayment call")
	}
	return f.createPaymentFn(ctx, req)
}

func (f *fakeRegistry) SubmitForApproval(ctx context.Context, applicationID int) error {
	f.approvalCalls++
	if f.submitForApprovalFn == nil {
		f.t.Fatal("unexpected SubmitForApproval call")
	}
	return f.submitForApprovalFn(ctx, applicationID)
}

// discardArchive is a no-op card archive for tests.
type discardArchive struct{}

func (discardArchive) Store(context.Context, string, []byte) (string, error) { return "", nil }
func (discardArchive) IsConfigured() bool                                    { return false }

func newTestHandler(t *testing.T, api services.RegistryClient) (*Handler, *echo.Echo) {
	t.Helper()
	engine, err := view.NewEngine()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = engine

	cfg := &config.Config{Environment: "test", EmailTestMode: true}
	return New(cfg, api, discardArchive{}), e
}

func getContext(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func postFormContext(e *echo.Echo, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
