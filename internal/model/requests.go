package model

import (
	"bytes"
	"encoding/json"
	"errors"
)

// FormValue is raw text typed into a form field.
// In JSON it may be sent as a string or a bare number.
type FormValue string

// UnmarshalJSON accepts "1111", 1111 and null
func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("form value must be a string or a number")
	}
	*v = FormValue(n.String())
	return nil
}

// LoginRequest is the payload for starting a session
type LoginRequest struct {
	Username string    `json:"username"`
	PIN      FormValue `json:"pin"`
}

// TransferRequest is the payload for moving money to another account
type TransferRequest struct {
	To     string    `json:"to"`
	Amount FormValue `json:"amount"`
}

// LoanRequest is the payload for requesting a loan
type LoanRequest struct {
	Amount FormValue `json:"amount"`
}

// CloseAccountRequest is the payload for closing the current account
type CloseAccountRequest struct {
	Username string    `json:"username"`
	PIN      FormValue `json:"pin"`
}
