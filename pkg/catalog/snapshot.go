package catalog

import (
	"sort"
	"strings"
)

// Snapshot is an immutable merged view of the vocabulary. Readers share one
// snapshot; refreshes build a new one and swap it wholesale.
type Snapshot struct {
	entries map[string]Entry
	ordered []Entry
}

// NewSnapshot builds a snapshot from entry lists, later lists winning on type
// collisions. Entries without a type identifier are dropped.
func NewSnapshot(lists ...[]Entry) *Snapshot {
	entries := make(map[string]Entry)

	for _, list := range lists {
		for _, entry := range list {
			if entry.Type == "" {
				continue
			}

			entries[entry.Type] = entry
		}
	}

	ordered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		ordered = append(ordered, entry)
	}

	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Type < ordered[j].Type })

	return &Snapshot{entries: entries, ordered: ordered}
}

// Len returns the number of distinct node types in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Entries returns all entries in stable (type-sorted) order.
func (s *Snapshot) Entries() []Entry {
	return s.ordered
}

// EntriesByCategory returns all entries of the given category in stable order.
func (s *Snapshot) EntriesByCategory(category Category) []Entry {
	entries := make([]Entry, 0)

	for _, entry := range s.ordered {
		if entry.Category == category {
			entries = append(entries, entry)
		}
	}

	return entries
}

// IsValidType reports whether the type identifier is in the vocabulary.
func (s *Snapshot) IsValidType(nodeType string) bool {
	_, ok := s.entries[nodeType]

	return ok
}

// CategoryOf returns the category of a known type, or CategoryUnknown.
func (s *Snapshot) CategoryOf(nodeType string) Category {
	entry, ok := s.entries[nodeType]
	if !ok {
		return CategoryUnknown
	}

	return entry.Category
}

// DisplayNameOf returns the display name of a known type, or the empty string.
func (s *Snapshot) DisplayNameOf(nodeType string) string {
	return s.entries[nodeType].DisplayName
}

// SuggestAlternative returns the closest valid type for an invalid one: alias
// table first, then display-name substring match, then a safe generic default
// (webhook trigger for trigger-like names, HTTP request otherwise).
func (s *Snapshot) SuggestAlternative(invalidType string) string {
	needle := normalizeTypeName(invalidType)
	if needle == "" {
		return HTTPRequestType
	}

	if alias, ok := typeAliases[needle]; ok {
		if s.IsValidType(alias) {
			return alias
		}
	}

	for _, entry := range s.ordered {
		display := normalizeTypeName(entry.DisplayName)
		if display == "" {
			continue
		}

		if strings.Contains(needle, display) || strings.Contains(display, needle) {
			return entry.Type
		}
	}

	if strings.Contains(needle, "trigger") {
		return WebhookTriggerType
	}

	return HTTPRequestType
}

// normalizeTypeName reduces a type or display name to lowercase alphanumerics,
// dropping any dotted namespace prefix.
func normalizeTypeName(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}

	var b strings.Builder

	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}
