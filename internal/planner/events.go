package planner

// Event is one calendar-ready record extracted from the advice text. The
// model is instructed to fill every field, but optional fields may still be
// absent in its output and consumers must tolerate that. A timed event
// without an end is understood downstream as lasting 60 minutes; for all-day
// events Start and End carry only the date part.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end,omitempty"`
	AllDay      bool   `json:"allday"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Timezone    string `json:"timezone"`
}

// Extraction is the parsed result of the JSON extraction stage. Events keep
// the order the model produced them; field values beyond the JSON structure
// itself are passed through unvalidated.
type Extraction struct {
	Events []Event `json:"events"`
}
