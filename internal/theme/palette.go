// Package theme resolves and persists the active color palette, either
// following the device's reported appearance or a manually pinned choice.
package theme

// Colors is the full palette consumed by the presentation layer.
type Colors struct {
	Background       string
	Card             string
	Text             string
	SecondaryText    string
	Primary          string
	Accent           string
	Border           string
	Error            string
	Success          string
	Divider          string
	HeaderBackground string
	InputBackground  string
	InputBorder      string
	TabBar           string
	TabBarInactive   string
}

// Theme is a named palette; Name is one of "light" or "dark".
type Theme struct {
	Name   string
	Colors Colors
}

var Light = Theme{
	Name: "light",
	Colors: Colors{
		Background:       "#F5F5F5",
		Card:             "#FFFFFF",
		Text:             "#333333",
		SecondaryText:    "#666666",
		Primary:          "#1E88E5",
		Accent:           "#FF4081",
		Border:           "#E0E0E0",
		Error:            "#F44336",
		Success:          "#4CAF50",
		Divider:          "#EEEEEE",
		HeaderBackground: "#FFFFFF",
		InputBackground:  "#FFFFFF",
		InputBorder:      "#DDDDDD",
		TabBar:           "#FFFFFF",
		TabBarInactive:   "#757575",
	},
}

var Dark = Theme{
	Name: "dark",
	Colors: Colors{
		Background:       "#121212",
		Card:             "#1E1E1E",
		Text:             "#F5F5F5",
		SecondaryText:    "#AAAAAA",
		Primary:          "#2196F3",
		Accent:           "#FF4081",
		Border:           "#333333",
		Error:            "#F44336",
		Success:          "#4CAF50",
		Divider:          "#333333",
		HeaderBackground: "#1E1E1E",
		InputBackground:  "#2A2A2A",
		InputBorder:      "#444444",
		TabBar:           "#1E1E1E",
		TabBarInactive:   "#AAAAAA",
	},
}

func themeByName(name string) Theme {
	if name == Dark.Name {
		return Dark
	}
	return Light
}
