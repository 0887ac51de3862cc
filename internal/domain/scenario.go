package domain

// Decoration is the static display metadata attached to a scenario.
type Decoration struct {
	Subtitle   string
	Image      string
	Color      string
	Tags       []string
	Difficulty string
}

// FallbackScenario is the decoration key used for unrecognised scenario names.
const FallbackScenario = "RACHEL"

var decorations = map[string]Decoration{
	"NIYA": {
		Subtitle:   "The Pillar of Stability",
		Image:      "Niya.svg",
		Color:      "from-blue-500/20 to-gold/5",
		Tags:       []string{"Risk Control", "Security", "Legacy"},
		Difficulty: "Stable",
	},
	"RACHEL": {
		Subtitle:   "The Master of Growth",
		Image:      "Rachel.svg",
		Color:      "from-gold/20 to-gold/5",
		Tags:       []string{"Strategy", "Portfolio", "Growth"},
		Difficulty: "Strategic",
	},
	"TINA": {
		Subtitle:   "The Agile Trend-Seeker",
		Image:      "Tina.svg",
		Color:      "from-orange-500/20 to-gold/5",
		Tags:       []string{"Momentum", "Equities", "Agile"},
		Difficulty: "Dynamic",
	},
}

// DecorationFor returns the decoration for a scenario's internal name.
func DecorationFor(name string) Decoration {
	if d, ok := decorations[name]; ok {
		return d
	}
	return decorations[FallbackScenario]
}

// Decorate returns a copy of s with its display metadata filled in.
func Decorate(s Scenario) Scenario {
	d := DecorationFor(s.Name)
	s.Subtitle = d.Subtitle
	s.Image = d.Image
	s.Color = d.Color
	s.Tags = append([]string(nil), d.Tags...)
	s.Difficulty = d.Difficulty
	return s
}
