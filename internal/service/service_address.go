// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/validators"
	"github.com/MKhiriev/go-order-keeper/models"
)

const (
	AddressTypeOrigin      = models.AddressTypeOrigin
	AddressTypeDestination = models.AddressTypeDestination
)

type addressService struct {
	validator validators.Validator
	logger    *logger.Logger
}

func NewAddressService(log *logger.Logger) AddressService {
	return &addressService{
		validator: validators.NewOrdersValidator(MaxPerPage),
		logger:    log,
	}
}

// Normalize implements [AddressService]. Text fields are trimmed, country
// and state codes are upper-cased and 9-digit US ZIP codes get the ZIP+4
// dash. The normalization is trivial when nothing but case and whitespace
// changed.
func (s *addressService) Normalize(ctx context.Context, req models.AddressValidationRequest) (models.AddressValidationResponse, error) {
	if err := s.validator.Validate(ctx, req, validators.FieldAddressType); err != nil {
		return models.AddressValidationResponse{}, mapValidationError(err)
	}

	in := req.Address
	out := models.ShippingLabelAddress{
		Company:  strings.TrimSpace(in.Company),
		Name:     strings.TrimSpace(in.Name),
		Phone:    strings.TrimSpace(in.Phone),
		Country:  strings.ToUpper(strings.TrimSpace(in.Country)),
		State:    strings.ToUpper(strings.TrimSpace(in.State)),
		Address1: strings.TrimSpace(in.Address1),
		Address2: strings.TrimSpace(in.Address2),
		City:     strings.TrimSpace(in.City),
		Postcode: strings.ToUpper(strings.TrimSpace(in.Postcode)),
	}

	if missing := missingAddressFields(out); len(missing) > 0 {
		logger.FromContext(ctx).Debug().Strs("missing", missing).Msg("address rejected")
		return models.AddressValidationResponse{
			Success: false,
			FieldErrors: &models.AddressValidationErrorDetails{
				AddressError: "missing " + strings.Join(missing, ", "),
				GeneralError: "address is incomplete",
			},
		}, nil
	}

	trivial := true
	if out.Country == "US" {
		if zip, ok := formatZIP(out.Postcode); ok && zip != out.Postcode {
			out.Postcode = zip
			trivial = false
		}
	}

	return models.AddressValidationResponse{
		Success:                true,
		Normalized:             &out,
		IsTrivialNormalization: trivial,
	}, nil
}

func missingAddressFields(a models.ShippingLabelAddress) []string {
	var missing []string
	if a.Address1 == "" {
		missing = append(missing, "address")
	}
	if a.City == "" {
		missing = append(missing, "city")
	}
	if a.Postcode == "" {
		missing = append(missing, "postcode")
	}
	if a.Country == "" {
		missing = append(missing, "country")
	}
	return missing
}

// formatZIP renders a US ZIP code as 12345 or 12345-6789.
func formatZIP(raw string) (string, bool) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		if r == '-' || r == ' ' {
			return -1
		}
		return 'x'
	}, raw)
	if strings.ContainsRune(digits, 'x') {
		return "", false
	}

	switch len(digits) {
	case 5:
		return digits, true
	case 9:
		return digits[:5] + "-" + digits[5:], true
	}
	return "", false
}
