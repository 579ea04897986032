package models

// WaitingCardData holds the fields printed onto an acknowledgement card.
// All fields are required by the layout; absent values render blank rather
// than producing an error.
type WaitingCardData struct {
	ApplicationNumber string
	FullName          string
	District          string
	ApplicationType   string
	OfficerName       string
	Date              string
}
