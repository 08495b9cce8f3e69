package domain

// Scientist is one record of the biographical database. The collection is
// loaded once at startup and treated as read-only for the process lifetime.
type Scientist struct {
	Name         string   `json:"name"`
	Field        string   `json:"field"`
	Subfield     string   `json:"subfield,omitempty"`
	Era          string   `json:"era,omitempty"`
	Archetype    string   `json:"archetype,omitempty"`
	Achievements string   `json:"achievements,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Moments      []string `json:"moments,omitempty"`
	WorkingStyle string   `json:"working_style,omitempty"`
	WikiTitle    string   `json:"wiki_title,omitempty"`
	Traits       Traits   `json:"traits"`
}
