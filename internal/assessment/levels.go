package assessment

// SectionMap maps quiz domains onto curriculum section names.
type SectionMap map[Domain]string

// DefaultSectionMap matches the section names of the bundled curriculum.
var DefaultSectionMap = SectionMap{
	DomainReading:    "Reading Comprehension",
	DomainLogic:      "Logical Reasoning",
	DomainSpatial:    "Drawing & Representation",
	DomainMath:       "Mathematics",
	DomainPhysics:    "Physics",
	DomainHumanities: "History & Culture",
}

// DefaultSectionLevel is given to sections no domain maps to.
const DefaultSectionLevel = LevelModerate

// Levels assigns a level to every section in sections. A section reached by
// several domains takes the weakest of their levels. Sections with no mapped
// domain get fallback (DefaultSectionLevel when fallback is empty).
func (m SectionMap) Levels(results []DomainResult, sections []string, fallback Level) map[string]Level {
	if !fallback.Valid() {
		fallback = DefaultSectionLevel
	}

	byName := make(map[string]Level)
	for _, r := range results {
		name, ok := m[r.Domain]
		if !ok {
			continue
		}
		if cur, seen := byName[name]; !seen || r.Level.Rank() < cur.Rank() {
			byName[name] = r.Level
		}
	}

	out := make(map[string]Level, len(sections))
	for _, s := range sections {
		if lvl, ok := byName[s]; ok {
			out[s] = lvl
		} else {
			out[s] = fallback
		}
	}
	return out
}

// LevelsBySection is Levels over DefaultSectionMap.
func LevelsBySection(results []DomainResult, sections []string, fallback Level) map[string]Level {
	return DefaultSectionMap.Levels(results, sections, fallback)
}
