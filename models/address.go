// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ShippingLabelAddress is a postal address used for shipping labels.
type ShippingLabelAddress struct {
	Company  string `json:"company"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	State    string `json:"state"`
	Address1 string `json:"address"`
	Address2 string `json:"address_2"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
}

// Address types accepted by the normalization endpoint.
const (
	AddressTypeOrigin      = "origin"
	AddressTypeDestination = "destination"
)

// AddressValidationRequest is sent to the address normalization endpoint.
type AddressValidationRequest struct {
	Address ShippingLabelAddress `json:"address"`
	// Type is either "origin" or "destination".
	Type string `json:"type"`
}

// AddressValidationSuccess is the successful outcome of an address
// validation: the normalized address and whether normalization changed
// anything meaningful.
type AddressValidationSuccess struct {
	Address                ShippingLabelAddress `json:"normalized"`
	IsTrivialNormalization bool                 `json:"is_trivial_normalization"`
}

// AddressValidationErrorDetails carries the server-side validation messages.
type AddressValidationErrorDetails struct {
	AddressError string `json:"address,omitempty"`
	GeneralError string `json:"general,omitempty"`
}

// AddressValidationResponse is the raw address validation document. Exactly
// one of Normalized or FieldErrors is expected to be set.
type AddressValidationResponse struct {
	Success                bool                           `json:"success"`
	Normalized             *ShippingLabelAddress          `json:"normalized,omitempty"`
	IsTrivialNormalization bool                           `json:"is_trivial_normalization"`
	FieldErrors            *AddressValidationErrorDetails `json:"field_errors,omitempty"`
}
