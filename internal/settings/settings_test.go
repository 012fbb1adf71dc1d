package settings

import (
	"testing"

	"portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(kv ...string) []models.SettingEntry {
	var out []models.SettingEntry
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, models.SettingEntry{Key: kv[i], Value: kv[i+1]})
	}
	return out
}

func TestGet_PresentAndMissing(t *testing.T) {
	s := Build(rows("contact_email", "a@b.com"))

	assert.Equal(t, "a@b.com", s.Get("contact_email", "x@y.com"))
	assert.Equal(t, "https://github.com", s.Get("github_url", "https://github.com"))
}

func TestGet_DefaultForAnyMissingKey(t *testing.T) {
	s := Build(rows("site_title", "Portfolio"))
	for _, def := range []string{"", "true", "false", "fallback"} {
		assert.Equal(t, def, s.Get("absent_key", def))
	}
}

func TestGet_PresentValueBeatsDefault(t *testing.T) {
	s := Build(rows("k", "v", "empty", ""))
	for _, def := range []string{"", "true", "v", "other"} {
		assert.Equal(t, "v", s.Get("k", def))
		assert.Equal(t, "", s.Get("empty", def), "an explicitly empty value is still a value")
	}
}

func TestZeroValue(t *testing.T) {
	var s Settings
	assert.Equal(t, "d", s.Get("anything", "d"))
	assert.False(t, s.Enabled(KeyMaintenanceMode))
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
}

func TestBuild_LastRowWins(t *testing.T) {
	s := Build(rows("site_title", "first", "site_title", "second"))
	assert.Equal(t, "second", s.Get("site_title", ""))
	assert.Equal(t, 1, s.Len())
}

func TestEnabled_ExactTrueOnly(t *testing.T) {
	cases := map[string]bool{
		"true":  true,
		"TRUE":  false,
		"True":  false,
		"1":     false,
		"yes":   false,
		"":      false,
		"false": false,
		" true": false,
	}
	for value, want := range cases {
		s := Build(rows(KeyMaintenanceMode, value))
		assert.Equal(t, want, s.Enabled(KeyMaintenanceMode), "value %q", value)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := Build(rows("a", "1"))
	m := s.All()
	m["a"] = "mutated"
	m["b"] = "2"

	assert.Equal(t, "1", s.Get("a", ""))
	assert.False(t, s.Has("b"))
}

func TestFromMapCopies(t *testing.T) {
	src := map[string]string{"a": "1"}
	s := FromMap(src)
	src["a"] = "2"
	assert.Equal(t, "1", s.Get("a", ""))
}

func TestGroupRows(t *testing.T) {
	in := []models.SettingEntry{
		{ID: "1", Key: KeyGithubURL, Value: "https://github.com/me"},
		{ID: "2", Key: "zeta_flag", Value: "true"},
		{ID: "3", Key: KeySiteTitle, Value: "Me"},
		{ID: "4", Key: "alpha_flag", Value: "false"},
		{ID: "5", Key: KeyMaintenanceMode, Value: "false"},
	}

	groups := GroupRows(in, Catalogue)

	require.Len(t, groups, len(Catalogue)+1)

	general := groups[0]
	assert.Equal(t, "General", general.Category)
	require.Len(t, general.Entries, 1)
	assert.Equal(t, KeySiteTitle, general.Entries[0].Key)
	assert.Equal(t, []string{KeySiteTagline, KeyFooterText}, general.Missing)

	contact := groups[1]
	assert.Empty(t, contact.Entries)
	assert.NotNil(t, contact.Entries)

	other := groups[len(groups)-1]
	assert.Equal(t, OtherCategory, other.Category)
	require.Len(t, other.Entries, 2)
	assert.Equal(t, "alpha_flag", other.Entries[0].Key)
	assert.Equal(t, "zeta_flag", other.Entries[1].Key)
}

func TestGroupRows_NoOtherBucketWhenAllKnown(t *testing.T) {
	groups := GroupRows(rows(KeySiteTitle, "x"), Catalogue)
	assert.Len(t, groups, len(Catalogue))
	for _, g := range groups {
		assert.NotEqual(t, OtherCategory, g.Category)
	}
}
