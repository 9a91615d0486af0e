// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package seed holds the versioned built-in itinerary shipped with the
// application, plus the helpers that stamp weather icons and report links
// onto its days.
package seed

import (
	"net/url"
	"strings"
)

// Version identifies the current revision of the built-in itinerary.
// Bump it whenever the shipped days or items change so clients merge the
// update into their saved state on next online launch.
const Version = 3

// MetaKeySeedVersion is the app_meta key under which the last applied
// seed version is stored.
const MetaKeySeedVersion = "seed_version"

// RemovedItemIDs lists item ids that existed in earlier seed revisions and
// must be purged from saved itineraries during reconciliation.
var RemovedItemIDs = map[string]struct{}{
	"25": {},
}

// IconForCondition maps a free-text weather condition to one of the fixed
// icon names understood by the UI. Matching is keyword-based and
// case-insensitive; unknown conditions fall back to SUNNY.
func IconForCondition(condition string) string {
	c := strings.ToLower(condition)
	switch {
	case strings.Contains(c, "breeze") || strings.Contains(c, "wind"):
		return "BREEZY"
	case strings.Contains(c, "humid"):
		return "HUMID"
	case strings.Contains(c, "coast") || strings.Contains(c, "sea"):
		return "COASTAL"
	case strings.Contains(c, "chill") || strings.Contains(c, "cold") || strings.Contains(c, "snow"):
		return "CHILLY"
	case strings.Contains(c, "dry"):
		return "DRY"
	case strings.Contains(c, "clear"):
		return "CLEAR"
	default:
		return "SUNNY"
	}
}

// GoogleWeatherURL builds an external full-report link for a place name.
func GoogleWeatherURL(place string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape("weather "+place)
}
