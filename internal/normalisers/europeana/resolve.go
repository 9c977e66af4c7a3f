package europeana

import (
	"strings"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// firstNonEmpty returns the first non-empty candidate, or fallback.
func firstNonEmpty(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return fallback
}

// firstNonEmptyList returns the first non-empty candidate list, or fallback.
func firstNonEmptyList(fallback []string, candidates ...[]string) []string {
	for _, c := range candidates {
		if len(c) > 0 {
			return c
		}
	}
	return fallback
}

// first returns the first element of values, or "".
func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func resolveTitle(r *domain.RawRecord) string {
	return firstNonEmpty(domain.UntitledTitle,
		first(r.Title),
		first(r.DCTitleLangAware["def"]),
	)
}

// resolveTimePeriod treats a present but empty def like a missing label.
func resolveTimePeriod(r *domain.RawRecord) string {
	var label string
	if len(r.EdmTimespanLabel) > 0 {
		label = r.EdmTimespanLabel[0].Def
	}
	return firstNonEmpty(domain.UnknownPeriod, label)
}

func resolveCreators(r *domain.RawRecord) []string {
	creators := firstNonEmptyList([]string{domain.UnknownArtist},
		agentNames(r.EdmAgentLabel),
		r.DCCreator,
	)
	out := make([]string, len(creators))
	copy(out, creators)
	return out
}

// agentNames returns the defs of labels, dropping blank ones.
func agentNames(labels []domain.LangLabel) []string {
	var names []string
	for _, l := range labels {
		if strings.TrimSpace(l.Def) == "" {
			continue
		}
		names = append(names, l.Def)
	}
	return names
}

func resolveProvider(r *domain.RawRecord) string {
	return firstNonEmpty(domain.UnknownProvider, r.DataProvider...)
}
