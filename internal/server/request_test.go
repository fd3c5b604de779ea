package server

import (
	"strings"
	"testing"

	"github.com/gompdf/ingredientpdf/pkg/report"
)

func TestDecodeRequestRows(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"ingredients":[
		{"ingredient":"Aloe Vera","common_name":"Aloe barbadensis","side_effects":""},
		{"ingredient":"Retinol","common_name":"Vitamin A","side_effects":"Photosensitivity"}
	]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	rows := req.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if strings.Join(rows[0], "|") != "Aloe Vera|Aloe barbadensis|" {
		t.Fatalf("unexpected first row %q", rows[0])
	}
	if rows[1][0] != "Retinol" || rows[1][2] != "Photosensitivity" {
		t.Fatalf("unexpected second row %q", rows[1])
	}
}

func TestDecodeRequestErrorsAreValidation(t *testing.T) {
	_, err := DecodeRequest([]byte(`{"ingredients":[{"ingredient":"a"}]}`))
	if report.KindFromError(err) != report.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "common_name") {
		t.Fatalf("expected the missing field named, got %v", err)
	}
}
