package constants

// Icon glyphs for use with icon fonts (Material Design Icons).
// These Unicode code points render as icons when used with the theme's icon font.
const (
	Check        = "\U000F012C" // Checkmark, visited step markers
	Lock         = "\U000F033E" // Padlock, disabled step markers
	ChevronLeft  = "\U000F0141" // Previous control glyph
	ChevronRight = "\U000F0142" // Next control glyph
	Cart         = "\U000F0110" // Shopping cart icon
	CreditCard   = "\U000F0120" // Payment step icon
	Truck        = "\U000F053D" // Shipping step icon
)
