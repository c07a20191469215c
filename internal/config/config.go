package config

// Canvas settings
const (
	Width  = 800
	Height = 400
	DPI    = 72
)

// Canvas size limits enforced by document commands
const (
	MinCanvasSide = 16
	MaxCanvasSide = 8192
)

// Text settings
const (
	DefaultText  = "MAGIC CANVAS"
	FontSize     = 40
	MinFontSize  = 8
	MaxFontSize  = 400
	FontFamily   = "DejaVu Sans"
	FontStyle    = "Bold"
	FontDPI      = 72
	SliderStepPt = 2 // Font size slider step in the editor
)

// Arc text layout (degrees, mathematical orientation)
const (
	ArcRadius     = 150
	ArcStartAngle = 180.0
	ArcSweep      = 180.0
	MaxArcSweep   = 360.0
)

// Appearance - default design colors
// Text coral #FF6B6B on teal #4ECDC4 with a slate #2C3E50 frame
const (
	TextColorR = 0xFF
	TextColorG = 0x6B
	TextColorB = 0x6B

	BackgroundColorR = 0x4E
	BackgroundColorG = 0xCD
	BackgroundColorB = 0xC4

	FrameColorR = 0x2C
	FrameColorG = 0x3E
	FrameColorB = 0x50

	FrameInset      = 5  // Border inset from canvas edges
	FrameWidth      = 3  // Border stroke width
	FrameCornerDot  = 5  // Radius of corner accent dots
	FrameCornerSpan = 10 // Distance of corner dots from edges
)

// History
const (
	MaxHistory = 50
)

// Export
const (
	JPEGQuality      = 95
	PNGCompression   = 6
	ExportDPI        = 300
	ThumbnailSize    = 256
	DefaultExtension = ".png"
)

// Editor preview size in terminal cells
const (
	PreviewWidth  = 64
	PreviewHeight = 16
)
