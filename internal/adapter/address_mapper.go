// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/models"
)

// decodeAddressValidation decodes an address validation document that is
// either wrapped in a {"data": ...} envelope or sent bare, and unwraps it
// into the normalized address or an *AddressValidationError.
func decodeAddressValidation(body []byte) (models.AddressValidationSuccess, error) {
	doc, err := decodeEnvelopeOrBare[models.AddressValidationResponse](body)
	if err != nil {
		return models.AddressValidationSuccess{}, err
	}

	if doc.FieldErrors != nil {
		return models.AddressValidationSuccess{}, &AddressValidationError{Details: *doc.FieldErrors}
	}
	if doc.Normalized == nil {
		return models.AddressValidationSuccess{}, fmt.Errorf("%w: address validation without normalized address", ErrDecodeResponse)
	}

	return models.AddressValidationSuccess{
		Address:                *doc.Normalized,
		IsTrivialNormalization: doc.IsTrivialNormalization,
	}, nil
}

func decodeEnvelopeOrBare[T any](body []byte) (T, error) {
	var zero T

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}

	if data, ok := probe["data"]; ok && len(probe) == 1 && !bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var env models.DataEnvelope[T]
		if err := json.Unmarshal(body, &env); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
		}
		return env.Data, nil
	}

	var doc T
	if err := json.Unmarshal(body, &doc); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return doc, nil
}
