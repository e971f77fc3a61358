// Package curriculum loads and validates the course content tree that the
// roadmap generator schedules: sections, their submodules and per-submodule
// workload stats.
package curriculum

// Stats is the workload of one submodule.
type Stats struct {
	VideoMinutes     int `json:"lessons_video_minutes" yaml:"lessons_video_minutes"`
	TimedTextMinutes int `json:"timed_text_minutes" yaml:"timed_text_minutes"`
	UntimedItems     int `json:"untimed_items" yaml:"untimed_items"`
	QuestionsTotal   int `json:"questions_total" yaml:"questions_total"`
	// TotalTimeMinutes, when set, replaces the video + timed text estimate.
	TotalTimeMinutes *int `json:"total_time_minutes,omitempty" yaml:"total_time_minutes,omitempty"`
}

// Minutes is the estimated study time for the submodule.
func (s Stats) Minutes() int {
	if s.TotalTimeMinutes != nil {
		return *s.TotalTimeMinutes
	}
	return s.VideoMinutes + s.TimedTextMinutes
}

// Submodule is the atomic scheduling unit.
type Submodule struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Stats Stats  `json:"stats" yaml:"stats"`
}

// Section groups submodules under a subject heading.
type Section struct {
	Name       string      `json:"name" yaml:"name"`
	Submodules []Submodule `json:"submodules" yaml:"submodules"`
}

// Overview is a complete curriculum. Treat it as read-only once loaded.
type Overview struct {
	Version  string    `json:"version" yaml:"version"`
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// SectionNames returns the section names in curriculum order.
func (o *Overview) SectionNames() []string {
	names := make([]string, len(o.Sections))
	for i, s := range o.Sections {
		names[i] = s.Name
	}
	return names
}

// TotalMinutes sums the estimated minutes of every submodule.
func (o *Overview) TotalMinutes() int {
	total := 0
	for _, s := range o.Sections {
		for _, m := range s.Submodules {
			total += m.Stats.Minutes()
		}
	}
	return total
}

// SubmoduleCount is the number of submodules across all sections.
func (o *Overview) SubmoduleCount() int {
	n := 0
	for _, s := range o.Sections {
		n += len(s.Submodules)
	}
	return n
}
