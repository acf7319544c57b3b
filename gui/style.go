package gui

// Spacing constants for consistent layout (similar to Tailwind spacing scale).
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4 // default item spacing
	SpaceMD   float32 = 8 // default padding
	SpaceLG   float32 = 12
	SpaceXL   float32 = 16
	Space2XL  float32 = 24
)

// Style defines the visual appearance of UI elements.
type Style struct {
	// Colors
	TextColor         uint32
	TextDisabledColor uint32
	HeadingColor      uint32

	// Panel colors
	PanelColor       uint32
	PanelBorderColor uint32

	// Button colors
	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	// Selection colors
	SelectedBgColor   uint32
	SelectedTextColor uint32
	HoveredBgColor    uint32

	// Drag value / checkbox frame
	InputBgColor     uint32
	InputBorderColor uint32
	CheckColor       uint32

	// Separator
	SeparatorColor uint32

	// Table colors
	BorderColor     uint32
	HeaderBgColor   uint32
	HeaderTextColor uint32 // 0 = use TextColor
	RowBgAltColor   uint32

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	// Tabs
	TabColor         uint32
	TabActiveColor   uint32
	TabHoveredColor  uint32
	SplitterColor    uint32
	DocumentBarColor uint32

	// Floating windows
	WindowBgColor          uint32
	WindowBorderColor      uint32
	TitleBarColor          uint32
	TitleBarActiveColor    uint32
	TitleTextColor         uint32
	ResizeGripColor        uint32
	ResizeGripHoveredColor uint32
	DebugColor             uint32

	// Sizing
	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32 // Default gap between items
	PanelPadding  float32
	ButtonPadding float32

	// Border
	BorderSize float32

	// Scrollbar
	ScrollbarSize float32
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,
		HeadingColor:      ColorWhite,

		PanelColor:       RGBA(20, 20, 20, 200),
		PanelBorderColor: RGBA(80, 80, 80, 255),

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),

		SelectedBgColor:   RGBA(50, 100, 150, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(60, 60, 60, 255),

		InputBgColor:     RGBA(30, 30, 30, 255),
		InputBorderColor: RGBA(100, 100, 100, 255),
		CheckColor:       ColorWhite,

		SeparatorColor: RGBA(80, 80, 80, 255),

		BorderColor:   RGBA(80, 80, 80, 255),
		HeaderBgColor: RGBA(40, 40, 40, 255),
		RowBgAltColor: RGBA(35, 35, 35, 255),

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		TabColor:         RGBA(40, 40, 40, 255),
		TabActiveColor:   RGBA(50, 100, 150, 255),
		TabHoveredColor:  RGBA(60, 60, 60, 255),
		SplitterColor:    RGBA(60, 60, 60, 255),
		DocumentBarColor: RGBA(45, 45, 50, 255),

		WindowBgColor:          RGBA(27, 27, 27, 250),
		WindowBorderColor:      RGBA(90, 90, 90, 255),
		TitleBarColor:          RGBA(40, 40, 45, 255),
		TitleBarActiveColor:    RGBA(55, 75, 110, 255),
		TitleTextColor:         ColorWhite,
		ResizeGripColor:        RGBA(110, 110, 110, 255),
		ResizeGripHoveredColor: RGBA(200, 200, 200, 255),
		DebugColor:             ColorRed,

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,

		BorderSize:    1,
		ScrollbarSize: 12,
	}
}

// DarkStyle returns a modern dark theme.
func DarkStyle() Style {
	s := DefaultStyle()
	s.PanelColor = RGBA(25, 25, 25, 240)
	s.ButtonColor = RGBA(45, 45, 45, 255)
	s.ButtonHoveredColor = RGBA(65, 65, 65, 255)
	s.SelectedBgColor = RGBA(65, 105, 225, 255) // Royal blue
	s.TabActiveColor = RGBA(65, 105, 225, 255)
	s.TitleBarActiveColor = RGBA(50, 80, 170, 255)
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	return Style{
		TextColor:         RGBA(20, 20, 20, 255),
		TextDisabledColor: RGBA(150, 150, 150, 255),
		HeadingColor:      RGBA(0, 0, 0, 255),

		PanelColor:       RGBA(245, 245, 245, 250),
		PanelBorderColor: RGBA(200, 200, 200, 255),

		ButtonColor:        RGBA(220, 220, 220, 255),
		ButtonHoveredColor: RGBA(200, 200, 200, 255),
		ButtonActiveColor:  RGBA(180, 180, 180, 255),

		SelectedBgColor:   RGBA(0, 120, 215, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(230, 230, 230, 255),

		InputBgColor:     ColorWhite,
		InputBorderColor: RGBA(150, 150, 150, 255),
		CheckColor:       RGBA(20, 20, 20, 255),

		SeparatorColor: RGBA(200, 200, 200, 255),

		BorderColor:     RGBA(200, 200, 200, 255),
		HeaderBgColor:   RGBA(230, 230, 230, 255),
		HeaderTextColor: RGBA(20, 20, 20, 255),
		RowBgAltColor:   RGBA(250, 250, 250, 255),

		ScrollbarBgColor:     RGBA(240, 240, 240, 255),
		ScrollbarGrabColor:   RGBA(180, 180, 180, 255),
		ScrollbarGrabHovered: RGBA(160, 160, 160, 255),

		TabColor:         RGBA(225, 225, 225, 255),
		TabActiveColor:   RGBA(0, 120, 215, 255),
		TabHoveredColor:  RGBA(210, 210, 210, 255),
		SplitterColor:    RGBA(190, 190, 190, 255),
		DocumentBarColor: RGBA(215, 215, 220, 255),

		WindowBgColor:          RGBA(248, 248, 248, 250),
		WindowBorderColor:      RGBA(160, 160, 160, 255),
		TitleBarColor:          RGBA(220, 220, 225, 255),
		TitleBarActiveColor:    RGBA(170, 195, 235, 255),
		TitleTextColor:         RGBA(20, 20, 20, 255),
		ResizeGripColor:        RGBA(150, 150, 150, 255),
		ResizeGripHoveredColor: RGBA(60, 60, 60, 255),
		DebugColor:             ColorRed,

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,

		BorderSize:    1,
		ScrollbarSize: 12,
	}
}

// StyleByName maps a theme name to a style. Unknown names give DefaultStyle.
func StyleByName(name string) Style {
	switch name {
	case "dark":
		return DarkStyle()
	case "light":
		return LightStyle()
	default:
		return DefaultStyle()
	}
}
