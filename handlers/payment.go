package handlers

import (
	"net/http"
	"net/url"
	"time"

	"id_console_app_go/models"
	"id_console_app_go/services"
	"id_console_app_go/view"

	"github.com/labstack/echo/v4"
)

// stkRedirectDelaySeconds is how long the STK-push wait screen shows before
// moving to the confirmation screen. The redirect is time-based, not
// confirmation-based; the backend owns actual payment state.
const stkRedirectDelaySeconds = 5

const missingContextNotice = "Missing application data. Please restart the process."

// paymentPageData is the payment screen view model. Method and Phone keep the
// form editable after a failed submission.
type paymentPageData struct {
	Context models.PaymentContext
	Fee     int
	Method  string
	Phone   string
}

// LostIDPage renders the intake screen the payment flow falls back to.
func (h *Handler) LostIDPage(c echo.Context) error {
	return c.Render(http.StatusOK, "lost_id", view.TemplateData{
		Title:  "Lost ID Replacement | ID Registry Console",
		Notice: c.QueryParam("notice"),
	})
}

// PaymentPage renders the payment screen. Entry requires a complete carried-in
// context; otherwise the officer is sent back to intake.
func (h *Handler) PaymentPage(c echo.Context) error {
	paymentCtx, err := models.PaymentContextFromValues(c.QueryParams())
	if err != nil {
		c.Logger().Warnf("Payment screen opened without context: %v", err)
		return redirectToIntake(c)
	}
	return h.renderPaymentPage(c, paymentCtx, "", "cash", "")
}

// SubmitPayment posts the payment and routes the result:
//   - mpesa: STK-push wait screen, then a timed redirect to confirmation
//   - cash: submit for approval, then an immediate redirect to confirmation
//
// Every failure path leaves the form editable; nothing is retried
// automatically.
func (h *Handler) SubmitPayment(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return redirectToIntake(c)
	}
	paymentCtx, err := models.PaymentContextFromValues(form)
	if err != nil {
		c.Logger().Warnf("Payment submitted without context: %v", err)
		return redirectToIntake(c)
	}

	method := models.PaymentMethod(c.FormValue("payment_method"))
	phone := c.FormValue("phone_number")

	if !models.ValidPaymentMethod(method) {
		return h.renderPaymentPage(c, paymentCtx, "Please select a payment method.", string(method), phone)
	}

	// Validation failures block submission before any network call
	if method == models.PaymentMethodMpesa {
		if err := services.ValidateMpesaPhone(phone); err != nil {
			return h.renderPaymentPage(c, paymentCtx, err.Error(), string(method), phone)
		}
	}

	payment := models.PaymentRequest{
		ApplicationID: paymentCtx.ApplicationID,
		Amount:        models.RenewalFeeKES,
		PaymentMethod: method,
	}
	if method == models.PaymentMethodMpesa {
		payment.PhoneNumber = phone
	}

	resp, err := h.api.CreatePayment(c.Request().Context(), payment)
	if err != nil {
		return h.renderPaymentPage(c, paymentCtx, paymentErrorMessage(err), string(method), phone)
	}

	outcome := models.PaymentOutcome{
		PaymentContext: paymentCtx,
		PaymentID:      resp.PaymentID,
		PaymentMethod:  method,
		Amount:         models.RenewalFeeKES,
	}
	confirmationURL := "/officer/lost-id/confirmation?" + outcome.Values().Encode()

	if method == models.PaymentMethodMpesa {
		return c.Render(http.StatusOK, "stk_wait", view.TemplateData{
			Title: "Complete M-Pesa Payment | ID Registry Console",
			Data: struct {
				RedirectURL  string
				DelaySeconds int
				Phone        string
			}{confirmationURL, stkRedirectDelaySeconds, phone},
		})
	}

	// Cash payments are submitted for approval immediately. This is a strict
	// sequential dependency on the payment having succeeded, and its failure
	// is distinct from a payment failure.
	if err := h.api.SubmitForApproval(c.Request().Context(), paymentCtx.ApplicationID); err != nil {
		msg := "Payment was recorded, but submitting the application for approval failed. Please retry."
		if apiErr, ok := err.(*services.APIError); ok && apiErr.Message != "" {
			msg = "Payment was recorded, but submitting the application for approval failed: " + apiErr.Message
		}
		return h.renderPaymentPage(c, paymentCtx, msg, string(method), phone)
	}

	return c.Redirect(http.StatusSeeOther, confirmationURL)
}

// PaymentConfirmation renders the confirmation screen from the accumulated
// outcome. A missing or partial outcome redirects back to intake.
func (h *Handler) PaymentConfirmation(c echo.Context) error {
	outcome, err := models.PaymentOutcomeFromValues(c.QueryParams())
	if err != nil {
		c.Logger().Warnf("Confirmation screen opened without outcome: %v", err)
		return redirectToIntake(c)
	}

	cardQuery := url.Values{
		"application_number": {outcome.ApplicationNumber},
		"full_name":          {outcome.FullName},
		"application_type":   {"Lost ID Replacement"},
		"date":               {time.Now().Format("2006-01-02")},
	}

	return c.Render(http.StatusOK, "confirmation", view.TemplateData{
		Title: "Payment Confirmation | ID Registry Console",
		Data: struct {
			models.PaymentOutcome
			CardQuery string
		}{outcome, cardQuery.Encode()},
	})
}

func (h *Handler) renderPaymentPage(c echo.Context, paymentCtx models.PaymentContext, errMsg, method, phone string) error {
	status := http.StatusOK
	if errMsg != "" {
		status = http.StatusBadRequest
	}
	return c.Render(status, "payment", view.TemplateData{
		Title: "Payment for Lost ID Replacement | ID Registry Console",
		Error: errMsg,
		Data: paymentPageData{
			Context: paymentCtx,
			Fee:     models.RenewalFeeKES,
			Method:  method,
			Phone:   phone,
		},
	})
}

// paymentErrorMessage surfaces a structured backend error verbatim and a
// generic message for connectivity failures.
func paymentErrorMessage(err error) string {
	if apiErr, ok := err.(*services.APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Payment processing failed. Please try again."
}

func redirectToIntake(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/officer/lost-id?notice="+url.QueryEscape(missingContextNotice))
}
