package swing

import "strings"

// ClubCategory is the closed set of club classes used to parameterize
// ideal ranges and fault rules.
type ClubCategory string

const (
	ClubDriver  ClubCategory = "driver"
	ClubWood    ClubCategory = "wood"
	ClubIron    ClubCategory = "iron"
	ClubWedge   ClubCategory = "wedge"
	ClubPutter  ClubCategory = "putter"
	ClubUnknown ClubCategory = "unknown"
)

// clubKeywords maps lowercase name fragments to categories. Order
// matters: more specific fragments are checked before generic ones, so
// "pitching wedge" classifies as a wedge, not an iron.
var clubKeywords = []struct {
	fragment string
	category ClubCategory
}{
	{"driver", ClubDriver},
	{"putter", ClubPutter},
	{"wedge", ClubWedge},
	{"sand", ClubWedge},
	{"lob", ClubWedge},
	{"pitching", ClubWedge},
	{"gap wedge", ClubWedge},
	{"hybrid", ClubWood},
	{"rescue", ClubWood},
	{"wood", ClubWood},
	{"iron", ClubIron},
}

// ClassifyClub maps a free-form club-name string to its category via
// keyword matching. Unmatched names fall back to ClubUnknown rather than
// erroring; the same input always yields the same category.
func ClassifyClub(name string) ClubCategory {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return ClubUnknown
	}
	for _, kw := range clubKeywords {
		if strings.Contains(lower, kw.fragment) {
			return kw.category
		}
	}
	// Shorthand like "7i" / "3w" / "sw" shows up in real capture metadata.
	switch lower {
	case "pw", "sw", "lw", "gw":
		return ClubWedge
	}
	switch {
	case strings.HasSuffix(lower, "i") && len(lower) <= 3:
		return ClubIron
	case strings.HasSuffix(lower, "w") && len(lower) <= 3:
		return ClubWood
	}
	return ClubUnknown
}
