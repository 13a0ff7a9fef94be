package services

import "testing"

func TestDeriveConceptFeaturesSplitsOnBlankLine(t *testing.T) {
	concept := "อยู่สบายทุกช่วงวัย. พื้นที่ส่วนกลางกว้างขวาง\n\nดีไซน์โมเดิร์น. ฟังก์ชันครบทุกตารางเมตร"
	gallery := []string{"/images/g-1.png", "/images/g-2.png", "/images/g-3.png"}

	features := DeriveConceptFeatures(concept, gallery)
	if len(features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(features))
	}
	if features[0].Title != "อยู่สบายทุกช่วงวัย" {
		t.Fatalf("unexpected first title: %s", features[0].Title)
	}
	if features[0].Description != "พื้นที่ส่วนกลางกว้างขวาง" {
		t.Fatalf("unexpected first description: %s", features[0].Description)
	}
	if features[0].Image != "/images/g-1.png" || features[1].Image != "/images/g-2.png" {
		t.Fatalf("unexpected images: %+v", features)
	}
}

func TestDeriveConceptFeaturesMidpointSplit(t *testing.T) {
	concept := "Living in harmony with modern nature design. Space for every generation."

	features := DeriveConceptFeatures(concept, nil)
	if len(features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(features))
	}
	if features[0].Title != "Living in harmony with modern nature design" {
		t.Fatalf("unexpected first title: %s", features[0].Title)
	}
	if features[1].Title != "Space for every generation" {
		t.Fatalf("unexpected second title: %s", features[1].Title)
	}
}

func TestDeriveConceptFeaturesSingleBlockReusesFirstImage(t *testing.T) {
	concept := "บ้านเดี่ยวสไตล์โมเดิร์นใกล้ทางด่วน"
	gallery := []string{"/images/g-1.png"}

	features := DeriveConceptFeatures(concept, gallery)
	if len(features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(features))
	}
	if features[0].Title != concept || features[0].Description != "" {
		t.Fatalf("unexpected feature: %+v", features[0])
	}
	if features[0].Image != "/images/g-1.png" {
		t.Fatalf("unexpected image: %s", features[0].Image)
	}
}

func TestDeriveConceptFeaturesEmptyConcept(t *testing.T) {
	if features := DeriveConceptFeatures("   ", nil); features != nil {
		t.Fatalf("expected nil, got %+v", features)
	}
}

func TestThemeLookupFallsBackToDefault(t *testing.T) {
	svc := NewThemeService()

	theme := svc.GetProjectTheme("ricco-residence-hathairat")
	if theme.CssClass != "theme-magenta" || theme.PrimaryColor != "#AF017F" {
		t.Fatalf("unexpected theme: %+v", theme)
	}

	fallback := svc.GetProjectTheme("no-such-project")
	if fallback.CssClass != "theme-default" || fallback.PrimaryColor != "#365523" {
		t.Fatalf("unexpected default theme: %+v", fallback)
	}
}
