// Package models holds entities shared between the server API and the
// terminal client.
package models

// Client is a customer record of the salon. Mobile is optional and empty
// when the customer left no phone number.
type Client struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile,omitempty"`
}
