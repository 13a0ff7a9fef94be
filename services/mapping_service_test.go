package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/Spacespixel/ppsasset-new/models"
)

func TestSlugForLegacyURLResolvesActiveMapping(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT project_slug FROM .project_mapping. WHERE legacy_type = \? AND legacy_name = \? AND legacy_location = \? AND is_active = 1`),
			columns: []string{"project_slug"},
			rows:    [][]driver.Value{{"ricco-town-wongwaen-lamlukka"}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewMappingService(db)

	slug, err := svc.SlugForLegacyURL(models.LegacyURL{
		Type:     "townhome",
		Name:     "ricco-town",
		Location: "wongwaen-lamlukka",
	})
	if err != nil {
		t.Fatalf("SlugForLegacyURL returned error: %v", err)
	}
	if slug != "ricco-town-wongwaen-lamlukka" {
		t.Fatalf("unexpected slug: %s", slug)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestSlugForLegacyURLUnmappedReturnsNotFound(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT project_slug FROM .project_mapping.`),
			columns: []string{"project_slug"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	_, err := NewMappingService(db).SlugForLegacyURL(models.LegacyURL{
		Type:     "townhome",
		Name:     "no-such-project",
		Location: "nowhere",
	})
	if !errors.Is(err, ErrMappingNotFound) {
		t.Fatalf("expected ErrMappingNotFound, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestSlugForLegacyURLIncompleteTripleSkipsQuery(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	_, err := NewMappingService(db).SlugForLegacyURL(models.LegacyURL{Type: "townhome"})
	if !errors.Is(err, ErrMappingNotFound) {
		t.Fatalf("expected ErrMappingNotFound, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestSlugForLegacyURLWrapsInfraError(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT project_slug FROM .project_mapping.`),
			err:     errors.New("connection refused"),
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	_, err := NewMappingService(db).SlugForLegacyURL(models.LegacyURL{
		Type:     "townhome",
		Name:     "ricco-town",
		Location: "wongwaen-lamlukka",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrMappingNotFound) {
		t.Fatalf("infra error must not map to ErrMappingNotFound: %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestLegacyURLForSlugReturnsTriple(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT legacy_type, legacy_name, legacy_location FROM .project_mapping. WHERE project_slug = \? AND is_active = 1`),
			columns: []string{"legacy_type", "legacy_name", "legacy_location"},
			rows:    [][]driver.Value{{"townhome", "ricco-town", "wongwaen-lamlukka"}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	u, err := NewMappingService(db).LegacyURLForSlug("ricco-town-wongwaen-lamlukka")
	if err != nil {
		t.Fatalf("LegacyURLForSlug returned error: %v", err)
	}
	if u.Key() != "townhome/ricco-town/wongwaen-lamlukka" {
		t.Fatalf("unexpected triple: %s", u.Key())
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestLegacyCodeForSlugReturnsCode(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT legacy_code FROM .project_mapping. WHERE project_slug = \? AND is_active = 1`),
			columns: []string{"legacy_code"},
			rows:    [][]driver.Value{{"SG06"}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	code, err := NewMappingService(db).LegacyCodeForSlug("ricco-residence-hathairat")
	if err != nil {
		t.Fatalf("LegacyCodeForSlug returned error: %v", err)
	}
	if code != "SG06" {
		t.Fatalf("unexpected code: %s", code)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestSlugForLegacyCodeEmptyInputSkipsQuery(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	_, err := NewMappingService(db).SlugForLegacyCode("  ")
	if !errors.Is(err, ErrMappingNotFound) {
		t.Fatalf("expected ErrMappingNotFound, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}
