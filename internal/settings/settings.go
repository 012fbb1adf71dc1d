// Package settings превращает строки site_settings в снимок key→value.
package settings

import "portfolio/internal/models"

// Известные ключи. Тип значения не проверяется, каждый читатель передаёт свой дефолт.
const (
	KeySiteTitle          = "site_title"
	KeySiteTagline        = "site_tagline"
	KeyContactEmail       = "contact_email"
	KeyGithubURL          = "github_url"
	KeyLinkedinURL        = "linkedin_url"
	KeyTwitterURL         = "twitter_url"
	KeyResumeURL          = "resume_url"
	KeyFooterText         = "footer_text"
	KeyMaintenanceMode    = "maintenance_mode"
	KeyMaintenanceMessage = "maintenance_message"
	KeyShowResearch       = "show_research"
	KeyShowAchievements   = "show_achievements"
	KeyShowLeadership     = "show_leadership"
)

const (
	True  = "true"
	False = "false"
)

// Settings хранит неизменяемый снимок настроек. Нулевое значение валидно: любой Get отдаёт дефолт.
type Settings struct {
	values map[string]string
}

// Build собирает снимок. При повторяющихся ключах побеждает последняя строка.
func Build(rows []models.SettingEntry) Settings {
	values := make(map[string]string, len(rows))
	for _, r := range rows {
		values[r.Key] = r.Value
	}
	return Settings{values: values}
}

// FromMap: снимок из готового map (копируется).
func FromMap(m map[string]string) Settings {
	values := make(map[string]string, len(m))
	for k, v := range m {
		values[k] = v
	}
	return Settings{values: values}
}

// Get возвращает значение ключа или def, если ключа нет.
func (s Settings) Get(key, def string) string {
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// Has: есть ли ключ в снимке.
func (s Settings) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Enabled: строго Get(key, "false") == "true". "TRUE", "1" и т.п. не считаются.
func (s Settings) Enabled(key string) bool {
	return s.Get(key, False) == True
}

// Len: число ключей.
func (s Settings) Len() int { return len(s.values) }

// All: копия сырого отображения для перебора.
func (s Settings) All() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
