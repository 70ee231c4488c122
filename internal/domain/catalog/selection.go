package catalog

import "strings"

// AllValues is the sentinel a select box sends for "no filter".
const AllValues = "all"

// Selection is the filter state of one browse session. Empty fields match everything.
type Selection struct {
	Categories []string `json:"categories"`
	Location   string   `json:"location"`
	PriceRange string   `json:"priceRange"`
}

func (s Selection) IsEmpty() bool {
	return len(s.Categories) == 0 && s.Location == "" && s.PriceRange == ""
}

func (s Selection) Clone() Selection {
	out := s
	out.Categories = append([]string(nil), s.Categories...)
	return out
}

// Normalize drops blank and duplicate categories and maps the "all" sentinel to unset.
func (s Selection) Normalize() Selection {
	out := Selection{
		Location:   normalizeSingle(s.Location),
		PriceRange: normalizeSingle(s.PriceRange),
	}
	seen := make(map[string]struct{}, len(s.Categories))
	for _, category := range s.Categories {
		category = strings.TrimSpace(category)
		if category == "" || category == AllValues {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		out.Categories = append(out.Categories, category)
	}
	return out
}

// Toggle adds category when absent and removes it when present.
func (s Selection) Toggle(category string) Selection {
	out := s.Clone()
	for i, selected := range out.Categories {
		if selected == category {
			out.Categories = append(out.Categories[:i], out.Categories[i+1:]...)
			return out
		}
	}
	out.Categories = append(out.Categories, category)
	return out
}

func normalizeSingle(value string) string {
	value = strings.TrimSpace(value)
	if value == AllValues {
		return ""
	}
	return value
}
