package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawGhost:      true,
		ShowHiddenRows: true,
		Colors: ConfigColors{
			I:      51,
			O:      226,
			T:      129,
			S:      46,
			Z:      196,
			J:      21,
			L:      208,
			Ghost:  240,
			Wall:   245,
			Hidden: 236,
		},
		Symbols: ConfigSymbols{
			Block: '█',
			Ghost: '░',
			Empty: '·',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			BagSize:   7,
			QueueSize: 5,
			LineGoal:  0,
		},
	}
}
