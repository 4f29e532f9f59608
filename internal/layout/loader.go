package layout

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// geometryFile is the YAML shape accepted by LoadGeometry. Every field
// is optional; unset fields keep the preset's value.
type geometryFile struct {
	Preset       string   `yaml:"preset"`
	DPI          *float64 `yaml:"dpi"`
	PageWidth    *float64 `yaml:"page_width"`
	PageHeight   *float64 `yaml:"page_height"`
	MarginTop    *float64 `yaml:"margin_top"`
	MarginRight  *float64 `yaml:"margin_right"`
	MarginBottom *float64 `yaml:"margin_bottom"`
	MarginLeft   *float64 `yaml:"margin_left"`
	HeaderHeight *float64 `yaml:"header_height"`
	FooterHeight *float64 `yaml:"footer_height"`
}

// LoadGeometry reads a YAML geometry description. The file names a
// preset and may override individual fields; an empty preset starts
// from A4.
func LoadGeometry(r io.Reader) (Geometry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Geometry{}, fmt.Errorf("read geometry: %w", err)
	}

	var gf geometryFile
	if err := yaml.Unmarshal(data, &gf); err != nil {
		return Geometry{}, fmt.Errorf("parse geometry: %w", err)
	}

	geom := A4()
	if gf.Preset != "" {
		geom, err = Preset(gf.Preset)
		if err != nil {
			return Geometry{}, err
		}
	}

	apply := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&geom.DPI, gf.DPI)
	apply(&geom.PageWidth, gf.PageWidth)
	apply(&geom.PageHeight, gf.PageHeight)
	apply(&geom.MarginTop, gf.MarginTop)
	apply(&geom.MarginRight, gf.MarginRight)
	apply(&geom.MarginBottom, gf.MarginBottom)
	apply(&geom.MarginLeft, gf.MarginLeft)
	apply(&geom.HeaderHeight, gf.HeaderHeight)
	apply(&geom.FooterHeight, gf.FooterHeight)

	if err := geom.Validate(); err != nil {
		return Geometry{}, err
	}
	return geom, nil
}

// LoadGeometryFile reads a YAML geometry description from a file path.
func LoadGeometryFile(path string) (Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return Geometry{}, fmt.Errorf("open geometry: %w", err)
	}
	defer f.Close()
	return LoadGeometry(f)
}
