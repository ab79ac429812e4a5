package types

import "strings"

// LocationQuery is the normalized location request parsed from the command
// line. At least one of Name or PostalCode is set; when both are set the
// postal code takes precedence and Name is only used for the ignore notice.
type LocationQuery struct {
	Name        string
	PostalCode  string
	CountryCode string
}

// ByPostalCode reports whether the postal-code resolution strategy applies.
func (q LocationQuery) ByPostalCode() bool {
	return q.PostalCode != ""
}

// ResolvedLocation is the single geocoding result a run proceeds with.
// It is produced exactly once per run and never modified afterwards.
type ResolvedLocation struct {
	Coordinates Coords
	DisplayName string
}

func NewResolvedLocation(latitude, longitude float64, displayName string) ResolvedLocation {
	return ResolvedLocation{
		Coordinates: NewCoords(latitude, longitude),
		DisplayName: displayName,
	}
}

// JoinNameParts builds a display name from segments, skipping empty ones.
func JoinNameParts(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
