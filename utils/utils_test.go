package utils

import (
	"strings"
	"testing"
	"time"
)

func TestTitleCaseSlug(t *testing.T) {
	cases := map[string]string{
		"ricco-town-wongwaen-lamlukka": "Ricco-Town-Wongwaen-Lamlukka",
		"single":                       "Single",
		"":                             "",
	}
	for in, want := range cases {
		if got := TitleCaseSlug(in); got != want {
			t.Errorf("TitleCaseSlug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFallbackHeroPath(t *testing.T) {
	got := FallbackHeroPath("ricco-residence-hathairat")
	want := "/images/projects/ricco-residence-hathairat/Ricco-Residence-Hathairat-Facility-1.png"
	if got != want {
		t.Fatalf("FallbackHeroPath = %q, want %q", got, want)
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"somchai@example.com", "a.b+c@pps-asset.co.th"}
	for _, e := range valid {
		if !ValidateEmail(e) {
			t.Errorf("ValidateEmail(%q) = false, want true", e)
		}
	}

	invalid := []string{"", "somchai", "somchai@", "@example.com", "somchai@example"}
	for _, e := range invalid {
		if ValidateEmail(e) {
			t.Errorf("ValidateEmail(%q) = true, want false", e)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"0812345678", "021234567", "081-234-5678", "081 234 5678"}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Errorf("ValidatePhone(%q) = false, want true", p)
		}
	}

	invalid := []string{"", "12345", "8123456789", "081234567890", "โทรมา"}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Errorf("ValidatePhone(%q) = true, want false", p)
		}
	}
}

func TestFormatThaiDateUsesBuddhistEra(t *testing.T) {
	at := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	got := FormatThaiDate(at.In(time.UTC))
	if got == "" {
		t.Fatal("expected formatted date")
	}
	// 2026 + 543 = 2569
	if want := "2569"; !strings.Contains(got, want) {
		t.Fatalf("FormatThaiDate = %q, want year %s", got, want)
	}
}

func TestFormatThaiDateZeroValue(t *testing.T) {
	if got := FormatThaiDate(time.Time{}); got != "" {
		t.Fatalf("expected empty string for zero time, got %q", got)
	}
}
