package settings

import (
	"sort"

	"portfolio/internal/models"
)

// OtherCategory: корзина для ключей, которых нет в каталоге.
const OtherCategory = "Other"

// Category: раздел админки настроек и его ключи в порядке показа.
type Category struct {
	Name string
	Keys []string
}

// Catalogue: фиксированная раскладка ключей по разделам для админки.
var Catalogue = []Category{
	{Name: "General", Keys: []string{KeySiteTitle, KeySiteTagline, KeyFooterText}},
	{Name: "Contact", Keys: []string{KeyContactEmail, KeyResumeURL}},
	{Name: "Social", Keys: []string{KeyGithubURL, KeyLinkedinURL, KeyTwitterURL}},
	{Name: "Features", Keys: []string{KeyShowResearch, KeyShowAchievements, KeyShowLeadership}},
	{Name: "Maintenance", Keys: []string{KeyMaintenanceMode, KeyMaintenanceMessage}},
}

// Group: раздел с найденными строками.
type Group struct {
	Category string                `json:"category"`
	Entries  []models.SettingEntry `json:"entries"`
	// Missing: ключи каталога, для которых строки нет (админ может их создать).
	Missing []string `json:"missing,omitempty"`
}

// GroupRows раскладывает строки по каталогу. Внутри раздела строки идут в порядке ключей каталога,
// в Other по ключу. Пустые разделы каталога всё равно возвращаются, Other только если непуст.
func GroupRows(rows []models.SettingEntry, catalogue []Category) []Group {
	byKey := make(map[string][]models.SettingEntry, len(rows))
	for _, r := range rows {
		byKey[r.Key] = append(byKey[r.Key], r)
	}

	known := make(map[string]struct{})
	groups := make([]Group, 0, len(catalogue)+1)
	for _, c := range catalogue {
		g := Group{Category: c.Name, Entries: []models.SettingEntry{}}
		for _, k := range c.Keys {
			known[k] = struct{}{}
			if entries, ok := byKey[k]; ok {
				g.Entries = append(g.Entries, entries...)
				continue
			}
			g.Missing = append(g.Missing, k)
		}
		groups = append(groups, g)
	}

	var other []models.SettingEntry
	for _, r := range rows {
		if _, ok := known[r.Key]; !ok {
			other = append(other, r)
		}
	}
	if len(other) > 0 {
		sort.SliceStable(other, func(i, j int) bool { return other[i].Key < other[j].Key })
		groups = append(groups, Group{Category: OtherCategory, Entries: other})
	}
	return groups
}
