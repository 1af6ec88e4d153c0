package gui

// Spacing scale. Prefer these over raw pixel numbers in layout code.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4 // default item spacing
	SpaceMD   float32 = 8 // default padding
	SpaceLG   float32 = 12
	SpaceXL   float32 = 16
	Space2XL  float32 = 24
	Space3XL  float32 = 32
	Space4XL  float32 = 48
)

// Style is the full widget palette and metric set. Zero color fields
// fall back as documented per field; everything else is used as-is.
type Style struct {
	TextColor          uint32
	TextDisabledColor  uint32
	TextHighlightColor uint32

	PanelColor           uint32
	PanelBorderColor     uint32
	PanelHeaderBgColor   uint32 // 0 falls back to ButtonColor
	PanelHeaderTextColor uint32 // 0 falls back to TextColor

	ButtonColor         uint32
	ButtonHoveredColor  uint32
	ButtonActiveColor   uint32
	ButtonDisabledColor uint32

	SelectedBgColor   uint32
	SelectedTextColor uint32
	HoveredBgColor    uint32

	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32

	SeparatorColor uint32

	// Tables and frames
	BorderColor     uint32
	HeaderBgColor   uint32
	HeaderTextColor uint32 // 0 falls back to TextColor
	RowBgAltColor   uint32

	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	SliderTrackColor  uint32
	SliderFillColor   uint32
	SliderGrabColor   uint32
	SliderGrabHovered uint32
	SliderGrabActive  uint32

	DropdownBgColor uint32
	ComboArrowColor uint32

	// FocusColor outlines the panel focus ring.
	FocusColor uint32

	// FontName selects a font from the provider, e.g. "font1" or "plate".
	FontName string

	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32 // gap between stacked widgets
	PanelPadding  float32
	ButtonPadding float32
	InputPadding  float32

	BorderSize float32
	Rounding   float32 // 0 draws sharp corners

	ScrollbarSize float32
}

// DefaultStyle is the neutral gray theme.
func DefaultStyle() Style {
	return Style{
		TextColor:          ColorWhite,
		TextDisabledColor:  ColorGray,
		TextHighlightColor: ColorYellow,

		PanelColor:           RGBA(20, 20, 20, 200),
		PanelBorderColor:     RGBA(80, 80, 80, 255),
		PanelHeaderBgColor:   RGBA(40, 40, 45, 255),
		PanelHeaderTextColor: 0,

		ButtonColor:         RGBA(50, 50, 50, 255),
		ButtonHoveredColor:  RGBA(70, 70, 70, 255),
		ButtonActiveColor:   RGBA(90, 90, 90, 255),
		ButtonDisabledColor: RGBA(30, 30, 30, 255),

		SelectedBgColor:   RGBA(50, 100, 150, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(60, 60, 60, 255),

		InputBgColor:        RGBA(30, 30, 30, 255),
		InputFocusedBgColor: RGBA(40, 40, 50, 255),
		InputBorderColor:    RGBA(100, 100, 100, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),

		BorderColor:     RGBA(80, 80, 80, 255),
		HeaderBgColor:   RGBA(40, 40, 40, 255),
		HeaderTextColor: 0,
		RowBgAltColor:   RGBA(35, 35, 35, 255),

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		SliderTrackColor:  RGBA(40, 40, 40, 255),
		SliderFillColor:   RGBA(50, 100, 150, 255),
		SliderGrabColor:   RGBA(100, 100, 100, 255),
		SliderGrabHovered: RGBA(120, 120, 120, 255),
		SliderGrabActive:  RGBA(140, 140, 140, 255),

		DropdownBgColor: RGBA(25, 25, 25, 250),
		ComboArrowColor: RGBA(180, 180, 180, 255),

		FocusColor: ColorCyan,

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		InputPadding:  4,

		BorderSize: 1,
		Rounding:   0,

		ScrollbarSize: 12,
	}
}

// ArcadeStyle is a dark theme with cyan and yellow accents, in the
// manner of arcade game menus.
func ArcadeStyle() Style {
	return Style{
		TextColor:          ColorWhite,
		TextDisabledColor:  RGBA(128, 128, 128, 255),
		TextHighlightColor: RGBA(255, 200, 0, 255),

		PanelColor:           RGBA(0, 0, 0, 220),
		PanelBorderColor:     RGBA(100, 100, 100, 255),
		PanelHeaderBgColor:   RGBA(0, 60, 90, 255),
		PanelHeaderTextColor: RGBA(255, 200, 0, 255),

		ButtonColor:         RGBA(40, 40, 40, 255),
		ButtonHoveredColor:  RGBA(60, 80, 100, 255),
		ButtonActiveColor:   RGBA(0, 150, 200, 255),
		ButtonDisabledColor: RGBA(30, 30, 30, 150),

		SelectedBgColor:   RGBA(0, 120, 180, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(50, 70, 90, 255),

		InputBgColor:        RGBA(20, 20, 20, 255),
		InputFocusedBgColor: RGBA(30, 40, 50, 255),
		InputBorderColor:    RGBA(0, 150, 200, 255),

		SeparatorColor: RGBA(0, 150, 200, 128),

		BorderColor:     RGBA(0, 100, 150, 255),
		HeaderBgColor:   RGBA(0, 80, 120, 255),
		HeaderTextColor: ColorWhite,
		RowBgAltColor:   RGBA(20, 30, 40, 255),

		ScrollbarBgColor:     RGBA(20, 20, 20, 255),
		ScrollbarGrabColor:   RGBA(0, 100, 150, 255),
		ScrollbarGrabHovered: RGBA(0, 150, 200, 255),

		SliderTrackColor:  RGBA(30, 30, 30, 255),
		SliderFillColor:   RGBA(0, 120, 180, 255),
		SliderGrabColor:   RGBA(0, 150, 200, 255),
		SliderGrabHovered: RGBA(0, 180, 230, 255),
		SliderGrabActive:  RGBA(0, 200, 255, 255),

		DropdownBgColor: RGBA(10, 10, 10, 250),
		ComboArrowColor: RGBA(0, 180, 230, 255),

		FocusColor: RGBA(0, 200, 255, 255),

		FontName: "font1",

		FontScale:     1.5,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   6,
		PanelPadding:  12,
		ButtonPadding: 8,
		InputPadding:  6,

		BorderSize: 1,
		Rounding:   0,

		ScrollbarSize: 14,
	}
}

// DarkStyle is DefaultStyle with deeper panels and a blue selection.
func DarkStyle() Style {
	s := DefaultStyle()
	s.PanelColor = RGBA(25, 25, 25, 240)
	s.PanelHeaderBgColor = RGBA(35, 35, 40, 255)
	s.ButtonColor = RGBA(45, 45, 45, 255)
	s.ButtonHoveredColor = RGBA(65, 65, 65, 255)
	s.SelectedBgColor = RGBA(65, 105, 225, 255)
	return s
}

// LightStyle is a light theme.
func LightStyle() Style {
	return Style{
		TextColor:          RGBA(20, 20, 20, 255),
		TextDisabledColor:  RGBA(150, 150, 150, 255),
		TextHighlightColor: RGBA(0, 100, 200, 255),

		PanelColor:           RGBA(245, 245, 245, 250),
		PanelBorderColor:     RGBA(200, 200, 200, 255),
		PanelHeaderBgColor:   RGBA(220, 220, 225, 255),
		PanelHeaderTextColor: RGBA(40, 40, 40, 255),

		ButtonColor:         RGBA(220, 220, 220, 255),
		ButtonHoveredColor:  RGBA(200, 200, 200, 255),
		ButtonActiveColor:   RGBA(180, 180, 180, 255),
		ButtonDisabledColor: RGBA(230, 230, 230, 255),

		SelectedBgColor:   RGBA(0, 120, 215, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(230, 230, 230, 255),

		InputBgColor:        ColorWhite,
		InputFocusedBgColor: ColorWhite,
		InputBorderColor:    RGBA(150, 150, 150, 255),

		SeparatorColor: RGBA(200, 200, 200, 255),

		BorderColor:     RGBA(200, 200, 200, 255),
		HeaderBgColor:   RGBA(230, 230, 230, 255),
		HeaderTextColor: RGBA(20, 20, 20, 255),
		RowBgAltColor:   RGBA(250, 250, 250, 255),

		ScrollbarBgColor:     RGBA(240, 240, 240, 255),
		ScrollbarGrabColor:   RGBA(180, 180, 180, 255),
		ScrollbarGrabHovered: RGBA(160, 160, 160, 255),

		SliderTrackColor:  RGBA(220, 220, 220, 255),
		SliderFillColor:   RGBA(0, 120, 215, 255),
		SliderGrabColor:   RGBA(180, 180, 180, 255),
		SliderGrabHovered: RGBA(160, 160, 160, 255),
		SliderGrabActive:  RGBA(140, 140, 140, 255),

		DropdownBgColor: RGBA(255, 255, 255, 255),
		ComboArrowColor: RGBA(80, 80, 80, 255),

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		InputPadding:  4,

		BorderSize: 1,
		Rounding:   0,

		ScrollbarSize: 12,
	}
}
