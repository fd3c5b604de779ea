package server

import (
	"bytes"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gompdf/ingredientpdf/pkg/report"
)

// Ingredient is one record of the generate-pdf request body.
// Pointer fields tell a missing or null value apart from an empty string.
type Ingredient struct {
	Ingredient  *string `json:"ingredient"`
	CommonName  *string `json:"common_name"`
	SideEffects *string `json:"side_effects"`
}

func (i Ingredient) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Ingredient, validation.NotNil),
		validation.Field(&i.CommonName, validation.NotNil),
		validation.Field(&i.SideEffects, validation.NotNil),
	)
}

// IngredientsRequest is the generate-pdf request body.
type IngredientsRequest struct {
	Ingredients []Ingredient `json:"ingredients"`
}

func (r IngredientsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Ingredients, validation.NotNil),
	)
}

// Rows returns one body row per ingredient in request order.
func (r IngredientsRequest) Rows() [][]string {
	rows := make([][]string, len(r.Ingredients))
	for i, item := range r.Ingredients {
		rows[i] = []string{*item.Ingredient, *item.CommonName, *item.SideEffects}
	}
	return rows
}

// DecodeRequest parses and validates a request body. Every failure is a
// validation error.
func DecodeRequest(body []byte) (IngredientsRequest, error) {
	var req IngredientsRequest
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&req); err != nil {
		return IngredientsRequest{}, report.NewError(report.KindValidation, "invalid request body", err)
	}
	if dec.More() {
		return IngredientsRequest{}, report.NewError(report.KindValidation, "invalid request body: trailing data", nil)
	}
	if err := req.Validate(); err != nil {
		return IngredientsRequest{}, report.NewError(report.KindValidation, "invalid request body", err)
	}
	return req, nil
}
