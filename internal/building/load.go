package building

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gosismo/internal/e030"
	"github.com/alexiusacademia/gosismo/internal/logger"
)

// Format is the encoding of a building file
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the file format from the extension; anything that is
// not .toml is read as JSON.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// Load reads and validates a building file
func Load(path string) (*Building, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading building file: %w", err)
	}

	b, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	logger.Debug("building loaded",
		zap.String("path", path),
		zap.String("name", b.Name),
		zap.Int("floors", len(b.Floors)),
		zap.Int("modes", len(b.Modes)),
	)

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Parse decodes a building definition. Missing code coefficients take the
// values of e030.DefaultSite.
func Parse(data []byte, format Format) (*Building, error) {
	b := &Building{Code: DefaultCode()}

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, b)
	default:
		err = json.Unmarshal(data, b)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Encode serialises the building in the requested format
func (b *Building) Encode(format Format) ([]byte, error) {
	if format == FormatTOML {
		return toml.Marshal(b)
	}
	return json.MarshalIndent(b, "", "  ")
}

// Save writes the building to path, choosing the format from the extension
func (b *Building) Save(path string) error {
	data, err := b.Encode(FormatFromPath(path))
	if err != nil {
		return err
	}

	// Create directory if needed
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultCode returns the code block of e030.DefaultSite
func DefaultCode() Code {
	s := e030.DefaultSite()
	return Code{Zone: s.Zone, Soil: s.Soil, U: s.U, R0: s.R0, Ia: s.Ia, Ip: s.Ip, CT: s.CT}
}

// Template returns a starter building with the given number of floors and
// modes. Masses, periods and shapes are illustrative and must be replaced
// with the results of the structural model.
func Template(floors, modes int) *Building {
	b := &Building{
		Name:        "New building",
		Description: "Floors listed from the first level up; one shape ordinate per floor",
		Code:        DefaultCode(),
		Floors:      make([]Floor, floors),
		Modes:       make([]Mode, modes),
	}

	for i := range b.Floors {
		b.Floors[i] = Floor{Mass: 1.0, Height: 3.0}
	}

	// Shear-building shapes sin((2j-1)·π·z/(2n+1)) with decreasing periods
	n := float64(floors)
	t1, _ := e030.EstimatePeriod(3.0*n, b.Code.CT)
	for j := range b.Modes {
		shape := make([]float64, floors)
		for i := range shape {
			shape[i] = roundTo(sinShape(j, i+1, floors), 4)
		}
		b.Modes[j] = Mode{
			Period: roundTo(t1/float64(2*j+1), 4),
			Shape:  shape,
		}
	}
	return b
}

func sinShape(mode, level, floors int) float64 {
	return math.Sin(float64(2*mode+1) * math.Pi * float64(level) / float64(2*floors+1))
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
