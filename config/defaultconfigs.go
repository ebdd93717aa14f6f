package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground: true,
		Colors: ConfigColors{
			Hidden:   250,
			Revealed: 240,
			Flag:     14,
			// 1 bright blue, 2 green, 3 bright red, 4 blue,
			// 5 red, 6 white, 7 magenta, 8 white
			Numbers:    [8]int{12, 2, 9, 4, 1, 7, 5, 7},
			Mine:       9,
			HiddenMine: 1,
			Bracket:    7,
			CursorBG:   4,
		},
		Symbols: ConfigSymbols{
			Hidden:     '_',
			Flag:       '$',
			Empty:      ' ',
			Mine:       'X',
			HiddenMine: '!',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			Preset: "beginner",
		},
	}
}
