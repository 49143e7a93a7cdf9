package utils

import (
	"errors"
	"testing"

	"quentinhas/model"
)

func TestItemRoundTrip(t *testing.T) {
	names := []string{
		"Frango assado e Toscana",
		"Isca (carne, frango e calabresa)",
		"Assado de panela e Toscana",
		"x",
		"Suco 500ml",
	}
	for qty := 1; qty <= 20; qty++ {
		for _, name := range names {
			line := model.ItemLine{Qty: qty, Name: name}
			got, err := DecodeItem(EncodeItem(line))
			if err != nil {
				t.Fatalf("decode %q: %v", EncodeItem(line), err)
			}
			if got != line {
				t.Errorf("round trip %+v -> %+v", line, got)
			}
		}
	}
}

func TestEncodeItems(t *testing.T) {
	got := EncodeItems([]model.ItemLine{{Qty: 2, Name: "A"}, {Qty: 1, Name: "B"}})
	if want := "[2x] A, [1x] B"; got != want {
		t.Errorf("EncodeItems = %q, want %q", got, want)
	}
}

func TestDecodeItemsKeepsCommasInNames(t *testing.T) {
	lines, errs := DecodeItems("[2x] Isca (carne, frango e calabresa), [1x] Frango assado e Toscana")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []model.ItemLine{
		{Qty: 2, Name: "Isca (carne, frango e calabresa)"},
		{Qty: 1, Name: "Frango assado e Toscana"},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %+v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], want[i])
		}
	}
}

func TestDecodeItemsWithKnownNames(t *testing.T) {
	known := []string{"A", "Isca (carne, frango e calabresa)"}

	lines, errs := DecodeItems("[2x] A, oops", known...)
	if len(lines) != 1 || lines[0] != (model.ItemLine{Qty: 2, Name: "A"}) {
		t.Errorf("lines = %+v", lines)
	}
	var te TokenError
	if len(errs) != 1 || !errors.As(errs[0], &te) || te.Token != "oops" {
		t.Errorf("errs = %v, want one TokenError for %q", errs, "oops")
	}

	lines, errs = DecodeItems("[1x] Isca (carne, frango e calabresa), [1x] A", known...)
	if len(errs) != 0 || len(lines) != 2 || lines[0].Name != known[1] {
		t.Errorf("lines = %+v, errs = %v", lines, errs)
	}

	// without known names the fragment is taken as part of the name
	lines, errs = DecodeItems("[2x] A, oops")
	if len(errs) != 0 || len(lines) != 1 || lines[0].Name != "A, oops" {
		t.Errorf("lines = %+v, errs = %v", lines, errs)
	}
}

func TestDecodeItemsMalformed(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLines int
		wantErrs  int
	}{
		{"empty", "", 0, 0},
		{"missing open bracket", "[2x] A, 1x] B", 2, 0},
		{"bad quantity", "[zx] A, [3x] B", 1, 1},
		{"no separator at start", "Frango, [1x] B", 1, 1},
		{"only garbage", "sem itens", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, errs := DecodeItems(tt.text)
			if len(lines) != tt.wantLines || len(errs) != tt.wantErrs {
				t.Errorf("DecodeItems(%q) = %d lines, %d errs; want %d, %d (%v)",
					tt.text, len(lines), len(errs), tt.wantLines, tt.wantErrs, errs)
			}
			for _, err := range errs {
				var te TokenError
				if !errors.As(err, &te) {
					t.Errorf("error %v is not a TokenError", err)
				}
			}
		})
	}
}

func TestDigitsOnly(t *testing.T) {
	if got := DigitsOnly("(86) 99999-8888"); got != "86999998888" {
		t.Errorf("DigitsOnly = %q", got)
	}
}

func TestDateLabel(t *testing.T) {
	got, err := DateLabel("2025-08-02")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Sábado (02/08/2025)" {
		t.Errorf("DateLabel = %q", got)
	}
	if _, err := DateLabel("02/08/2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
