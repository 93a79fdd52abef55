package kit

import (
	"strings"

	"github.com/samber/lo"
)

// SortSpec is a validated "field:direction" sort instruction.
type SortSpec struct {
	Field string
	Asc   bool
}

// ParseSort validates spec against a whitelist of sortable fields. An empty
// spec yields the zero SortSpec (caller applies its default order).
func ParseSort(spec string, allowed ...string) (SortSpec, error) {
	if spec == "" {
		return SortSpec{Asc: true}, nil
	}
	parts := strings.Split(spec, ":")
	field := strings.TrimSpace(parts[0])
	dir := lo.TernaryF(len(parts) > 1,
		func() string { return strings.ToLower(strings.TrimSpace(parts[1])) },
		func() string { return "asc" },
	)
	var asc bool
	switch dir {
	case "asc":
		asc = true
	case "desc":
		asc = false
	default:
		return SortSpec{}, BadRequest("invalid sort direction", dir)
	}
	if !lo.Contains(allowed, field) {
		return SortSpec{}, BadRequest("invalid sort field", field)
	}
	return SortSpec{Field: field, Asc: asc}, nil
}
