// Package service implements the translation-aggregation and project
// assembly logic on top of the upstream client.
package service

import (
	"context"
	"strings"

	"github.com/castlemill/tms-proxy/internal/domain/dto"
	"github.com/castlemill/tms-proxy/internal/domain/model"
	"github.com/castlemill/tms-proxy/internal/logger"
	"github.com/castlemill/tms-proxy/internal/metrics"
	"github.com/castlemill/tms-proxy/internal/reqctx"
	"golang.org/x/text/language"
)

// keysPageLimit bounds the single key fetch. Projects with more keys are
// silently truncated to the first page; real cursor pagination is the
// follow-up if projects ever grow past this.
const keysPageLimit = 5000

// TranslationFetcher is the slice of the upstream client the aggregator uses.
type TranslationFetcher interface {
	ListKeys(ctx context.Context, token, projectID string, limit int) ([]model.TranslationKey, error)
}

// TranslationService aggregates per-key translation records into a
// locale-indexed mapping.
type TranslationService interface {
	// Aggregate returns one mapping per requested locale. Bad input fails
	// fast; an upstream failure degrades to empty mappings instead of an
	// error so a translation outage never blocks the caller.
	Aggregate(ctx context.Context, rc reqctx.RequestContext, locales []string) (model.LocaleTranslationMap, error)
}

type translationService struct {
	api TranslationFetcher
}

// NewTranslationService creates a TranslationService backed by the given fetcher.
func NewTranslationService(api TranslationFetcher) TranslationService {
	return &translationService{api: api}
}

// Aggregate implements TranslationService.
func (s *translationService) Aggregate(ctx context.Context, rc reqctx.RequestContext, locales []string) (model.LocaleTranslationMap, error) {
	if len(locales) == 0 {
		return nil, &dto.ValidationError{Field: "locales", Message: "at least one locale is required"}
	}

	result := model.NewLocaleTranslationMap(locales)

	keys, err := s.api.ListKeys(ctx, rc.Token, rc.ProjectID, keysPageLimit)
	if err != nil {
		// Fail-soft: a fetch failure degrades to "no translations available"
		// rather than blocking the caller. Writes never take this path.
		log := logger.Logger()
		log.Error().
			Err(err).
			Str("project_id", rc.ProjectID).
			Msg("Translation fetch failed, returning empty aggregation")
		metrics.RecordAggregation("degraded", 0)
		return result, nil
	}

	// Requested locales index, keyed by canonical form so that upstream
	// codes match regardless of separator or casing (fr_FR vs fr-FR). The
	// result keys stay exactly as the caller spelled them.
	requested := make(map[string]string, len(locales))
	for _, locale := range locales {
		requested[canonicalLocale(locale)] = locale
	}

	for _, key := range keys {
		name := string(key.KeyName)
		for _, tr := range key.Translations {
			if tr.Translation == "" {
				continue
			}
			locale, ok := requested[canonicalLocale(tr.LanguageISO)]
			if !ok {
				continue
			}
			// Later keys overwrite earlier ones on name collision.
			result[locale][name] = tr.Translation
		}
	}

	metrics.RecordAggregation("ok", len(keys))
	return result, nil
}

// canonicalLocale normalizes a locale code for matching. Unparseable codes
// fall back to lowercase comparison instead of being rejected.
func canonicalLocale(code string) string {
	trimmed := strings.TrimSpace(code)
	tag, err := language.Parse(strings.ReplaceAll(trimmed, "_", "-"))
	if err != nil {
		return strings.ToLower(trimmed)
	}
	return strings.ToLower(tag.String())
}
