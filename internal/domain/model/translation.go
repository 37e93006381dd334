// Package model provides domain models for the translation proxy.
package model

import (
	"encoding/json"
	"sort"
)

// KeyName is the human-readable name of a translation key. Upstream returns
// it either as a plain string or as a single-entry object keyed by platform
// ({"web": "home.title"}); in the latter form it is reduced to the value.
type KeyName string

// UnmarshalJSON accepts both upstream representations of a key name.
func (n *KeyName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = KeyName(s)
		return nil
	}

	var byPlatform map[string]string
	if err := json.Unmarshal(data, &byPlatform); err != nil {
		return err
	}

	// Single-entry in practice; iterate platforms in sorted order so the
	// reduction stays deterministic if upstream ever sends more than one.
	platforms := make([]string, 0, len(byPlatform))
	for p := range byPlatform {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)
	for _, p := range platforms {
		if byPlatform[p] != "" {
			*n = KeyName(byPlatform[p])
			return nil
		}
	}
	*n = ""
	return nil
}

// Translation is one per-language value attached to a translation key.
type Translation struct {
	TranslationID int64  `json:"translation_id"`
	KeyID         int64  `json:"key_id,omitempty"`
	LanguageISO   string `json:"language_iso"`
	Translation   string `json:"translation"`
	IsReviewed    bool   `json:"is_reviewed,omitempty"`
	IsUnverified  bool   `json:"is_unverified,omitempty"`
}

// TranslationKey is a translation key with its embedded per-language values,
// sourced verbatim from upstream and read-only within the core.
type TranslationKey struct {
	KeyID        int64         `json:"key_id"`
	KeyName      KeyName       `json:"key_name"`
	Platforms    []string      `json:"platforms,omitempty"`
	Translations []Translation `json:"translations"`
}

// Language is one target language configured on a project.
type Language struct {
	LangID   int64  `json:"lang_id"`
	LangISO  string `json:"lang_iso"`
	LangName string `json:"lang_name"`
}

// LocaleTranslationMap maps locale → key name → translated text. It is built
// fresh on every aggregation call and never cached; a locale appears only if
// the caller requested it.
type LocaleTranslationMap map[string]map[string]string

// NewLocaleTranslationMap returns a map with one empty entry per requested
// locale, so callers always get back exactly the locales they asked for.
func NewLocaleTranslationMap(locales []string) LocaleTranslationMap {
	m := make(LocaleTranslationMap, len(locales))
	for _, locale := range locales {
		m[locale] = make(map[string]string)
	}
	return m
}
