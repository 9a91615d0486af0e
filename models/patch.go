package models

// ItineraryItemPatch describes a partial update of an itinerary item.
// Only non-nil fields are applied (the UI edits title and location; the
// remaining fields are supported for completeness).
type ItineraryItemPatch struct {
	Time        *string `json:"time,omitempty"`
	Location    *string `json:"location,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}
