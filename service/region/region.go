package region

import (
	"strings"

	"github.com/elC0mpa/ipam-doctor/model"
)

// Filter narrows the subscribed regions to the requested tokens. A token
// matches a region by name or key, ignoring case. If any token matches no
// region the whole filter fails and nothing is returned.
func Filter(all []model.Region, requested []string) ([]model.Region, error) {
	if len(requested) == 0 {
		return all, nil
	}

	var filtered []model.Region
	seen := make(map[string]bool, len(all))

	for _, token := range requested {
		token = strings.TrimSpace(token)
		matched := false

		for _, r := range all {
			if !Matches(r, token) {
				continue
			}
			matched = true
			if !seen[r.Name] {
				seen[r.Name] = true
				filtered = append(filtered, r)
			}
		}

		if !matched {
			return nil, &model.RegionNotFoundError{Token: token}
		}
	}

	return filtered, nil
}

// Matches reports whether token names the region by full name or short key
func Matches(r model.Region, token string) bool {
	return strings.EqualFold(r.Name, token) || (r.Key != "" && strings.EqualFold(r.Key, token))
}

// Names returns the region names in order
func Names(regions []model.Region) []string {
	names := make([]string, 0, len(regions))
	for _, r := range regions {
		names = append(names, r.Name)
	}
	return names
}
