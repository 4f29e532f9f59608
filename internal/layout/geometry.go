package layout

import "fmt"

// DefaultDPI is the CSS reference pixel density used by the presets.
const DefaultDPI = 96.0

// Geometry describes one fixed-size page box in pixels.
// All dimensions are at the geometry's DPI.
type Geometry struct {
	// DPI is the pixel density used to convert to physical units
	// for print/export.
	DPI float64

	// PageWidth and PageHeight are the full page dimensions.
	PageWidth  float64
	PageHeight float64

	// Margin box. Content is laid out inside the margins.
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	// HeaderHeight and FooterHeight reserve bands inside the margin
	// box (e.g. for a letterhead strip or a page-number line). Zero
	// means no reservation.
	HeaderHeight float64
	FooterHeight float64
}

// ContentWidth returns the horizontal space available to page content.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - g.MarginLeft - g.MarginRight
}

// ContentHeight returns the vertical space available to page content,
// after margins and any header/footer reservations.
func (g Geometry) ContentHeight() float64 {
	return g.PageHeight - g.MarginTop - g.MarginBottom - g.HeaderHeight - g.FooterHeight
}

// PaperWidthInches returns the physical page width for print targets.
func (g Geometry) PaperWidthInches() float64 {
	return g.PageWidth / g.DPI
}

// PaperHeightInches returns the physical page height for print targets.
func (g Geometry) PaperHeightInches() float64 {
	return g.PageHeight / g.DPI
}

// Validate reports whether the geometry leaves usable content space.
func (g Geometry) Validate() error {
	if g.DPI <= 0 {
		return fmt.Errorf("%w: dpi %.f", ErrInvalidGeometry, g.DPI)
	}
	if g.PageWidth <= 0 || g.PageHeight <= 0 {
		return fmt.Errorf("%w: page %.fx%.f", ErrInvalidGeometry, g.PageWidth, g.PageHeight)
	}
	if g.ContentWidth() <= 0 {
		return fmt.Errorf("%w: margins consume page width", ErrInvalidGeometry)
	}
	if g.ContentHeight() <= 0 {
		return fmt.Errorf("%w: margins and reservations consume page height", ErrInvalidGeometry)
	}
	return nil
}

// A4 returns A4 page geometry at 96 dpi (794x1123 px) with one-inch
// margins.
func A4() Geometry {
	return Geometry{
		DPI:          DefaultDPI,
		PageWidth:    794,
		PageHeight:   1123,
		MarginTop:    96,
		MarginRight:  96,
		MarginBottom: 96,
		MarginLeft:   96,
	}
}

// USLetter returns US Letter page geometry at 96 dpi (816x1056 px)
// with one-inch margins.
func USLetter() Geometry {
	return Geometry{
		DPI:          DefaultDPI,
		PageWidth:    816,
		PageHeight:   1056,
		MarginTop:    96,
		MarginRight:  96,
		MarginBottom: 96,
		MarginLeft:   96,
	}
}

// Preset returns the named built-in geometry. Names are matched
// case-insensitively ("a4", "letter", "usletter").
func Preset(name string) (Geometry, error) {
	switch normalizePreset(name) {
	case "a4":
		return A4(), nil
	case "letter", "usletter":
		return USLetter(), nil
	default:
		return Geometry{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

func normalizePreset(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		case c == ' ' || c == '-' || c == '_':
			// skip separators
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
