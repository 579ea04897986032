package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// RenewalFeeKES is the fixed replacement fee charged for a lost ID
// application, in Kenyan shillings.
const RenewalFeeKES = 1000

type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodMpesa PaymentMethod = "mpesa"
)

// ValidPaymentMethod reports whether m is one of the supported methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	return m == PaymentMethodCash || m == PaymentMethodMpesa
}

// PaymentRequest is the body posted to the registry payments endpoint.
// Constructed fresh per submission attempt.
type PaymentRequest struct {
	ApplicationID int           `json:"application_id"`
	Amount        int           `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PhoneNumber   string        `json:"phone_number,omitempty"`
}

// PaymentResponse is the registry response for a created payment.
type PaymentResponse struct {
	PaymentID         int    `json:"paymentId"`
	Message           string `json:"message,omitempty"`
	CheckoutRequestID string `json:"checkoutRequestId,omitempty"`
}

// PaymentContext is the typed transfer object carried from the intake screen
// into the payment screen. All fields are required before the payment screen
// may render; a missing field redirects the officer back to intake.
type PaymentContext struct {
	ApplicationNumber string
	ApplicationID     int
	WaitingCardNumber string
	FullName          string
}

// PaymentContextFromValues validates and decodes a context from query or form
// values. It is the single boundary check for the payment screen.
func PaymentContextFromValues(v url.Values) (PaymentContext, error) {
	ctx := PaymentContext{
		ApplicationNumber: strings.TrimSpace(v.Get("application_number")),
		WaitingCardNumber: strings.TrimSpace(v.Get("waiting_card_number")),
		FullName:          strings.TrimSpace(v.Get("full_name")),
	}
	if ctx.ApplicationNumber == "" {
		return PaymentContext{}, fmt.Errorf("missing application number")
	}
	id, err := strconv.Atoi(v.Get("application_id"))
	if err != nil || id <= 0 {
		return PaymentContext{}, fmt.Errorf("missing or invalid application id")
	}
	ctx.ApplicationID = id
	if ctx.WaitingCardNumber == "" {
		return PaymentContext{}, fmt.Errorf("missing waiting card number")
	}
	if ctx.FullName == "" {
		return PaymentContext{}, fmt.Errorf("missing applicant name")
	}
	return ctx, nil
}

// Values encodes the context for the next navigation step.
func (c PaymentContext) Values() url.Values {
	return url.Values{
		"application_number":  {c.ApplicationNumber},
		"application_id":      {strconv.Itoa(c.ApplicationID)},
		"waiting_card_number": {c.WaitingCardNumber},
		"full_name":           {c.FullName},
	}
}

// PaymentOutcome is the accumulated state carried into the confirmation
// screen: the original context plus the payment result.
type PaymentOutcome struct {
	PaymentContext
	PaymentID     int
	PaymentMethod PaymentMethod
	Amount        int
}

// PaymentOutcomeFromValues validates and decodes an outcome at the
// confirmation screen boundary.
func PaymentOutcomeFromValues(v url.Values) (PaymentOutcome, error) {
	ctx, err := PaymentContextFromValues(v)
	if err != nil {
		return PaymentOutcome{}, err
	}
	paymentID, err := strconv.Atoi(v.Get("payment_id"))
	if err != nil || paymentID <= 0 {
		return PaymentOutcome{}, fmt.Errorf("missing or invalid payment id")
	}
	method := PaymentMethod(v.Get("payment_method"))
	if !ValidPaymentMethod(method) {
		return PaymentOutcome{}, fmt.Errorf("missing or invalid payment method")
	}
	amount, err := strconv.Atoi(v.Get("amount"))
	if err != nil || amount <= 0 {
		return PaymentOutcome{}, fmt.Errorf("missing or invalid amount")
	}
	return PaymentOutcome{
		PaymentContext: ctx,
		PaymentID:      paymentID,
		PaymentMethod:  method,
		Amount:         amount,
	}, nil
}

// Values encodes the outcome for the confirmation redirect.
func (o PaymentOutcome) Values() url.Values {
	v := o.PaymentContext.Values()
	v.Set("payment_id", strconv.Itoa(o.PaymentID))
	v.Set("payment_method", string(o.PaymentMethod))
	v.Set("amount", strconv.Itoa(o.Amount))
	return v
}
