// Package levels holds the JSON map format and the maps shipped with the
// game.
package levels

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
)

// Level is one map document.
type Level struct {
	Name   string  `json:"name,omitempty" jsonschema:"description=Display name of the map"`
	Width  int     `json:"width" jsonschema:"minimum=1,description=Map width in pixels"`
	Height int     `json:"height" jsonschema:"minimum=1,description=Map height in pixels"`
	Layers []Layer `json:"layers" jsonschema:"minItems=1"`
	// PlayerStart is where the player enters the map. Nil means the centre
	// of layer 0.
	PlayerStart *Spawn `json:"player_start,omitempty"`
}

type Spawn struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Layer int     `json:"layer"`
}

// Start returns the player's spawn point and layer.
func (lvl *Level) Start() (cp.Vector, int) {
	if lvl.PlayerStart == nil {
		return cp.Vector{X: float64(lvl.Width) / 2, Y: float64(lvl.Height) / 2}, 0
	}
	return cp.Vector{X: lvl.PlayerStart.X, Y: lvl.PlayerStart.Y}, lvl.PlayerStart.Layer
}

// Layer is one elevation of a map. Enemies listed here spawn on it.
type Layer struct {
	Elevation    int           `json:"elevation" jsonschema:"description=Unique height of the layer; 0 is the ground"`
	BgColor      [3]int        `json:"bg_color"`
	FloorRegions []FloorRegion `json:"floor_regions"`
	WallRegions  []WallRegion  `json:"wall_regions"`
	Stairways    []Stairway    `json:"stairways,omitempty"`
	Enemies      []Enemy       `json:"enemies,omitempty"`
}

// Background returns the layer colour.
func (l Layer) Background() color.RGBA {
	return color.RGBA{R: channel(l.BgColor[0]), G: channel(l.BgColor[1]), B: channel(l.BgColor[2]), A: 0xff}
}

func channel(v int) uint8 {
	return uint8(common.Clamp(float64(v), 0, 255))
}

type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w" jsonschema:"exclusiveMinimum=0"`
	H float64 `json:"h" jsonschema:"exclusiveMinimum=0"`
}

func (r Rect) Bounds() common.Rect { return common.NewRect(r.X, r.Y, r.W, r.H) }

// FloorRegion is a typed region lying on a layer. Tiles maps "x,y" to a tile
// image and is only used for drawing.
type FloorRegion struct {
	Rect
	Type  string            `json:"type" jsonschema:"description=Region type from regions.yaml"`
	Tiles map[string]string `json:"tiles,omitempty"`
}

type WallRegion struct {
	Rect
	Tiles map[string]string `json:"tiles,omitempty"`
}

type Stairway struct {
	Rect
	FromLayer int    `json:"from_layer"`
	ToLayer   int    `json:"to_layer"`
	Direction string `json:"direction,omitempty" jsonschema:"enum=left,enum=right,enum=up,enum=down,description=Side of the midpoint that counts as crossed; defaults to left"`
}

type Enemy struct {
	Type    string   `json:"type" jsonschema:"description=Enemy type from enemies.yaml"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Facing  string   `json:"facing,omitempty" jsonschema:"enum=up,enum=down,enum=left,enum=right"`
	Pattern *Pattern `json:"pattern,omitempty"`
}

// Pattern names a movement pattern. On the wire its numeric parameters sit
// next to "type".
type Pattern struct {
	Type   string             `json:"type"`
	Params map[string]float64 `json:"-"`
}

func (p *Pattern) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	typ, ok := raw["type"]
	if !ok {
		return fmt.Errorf("pattern: missing type")
	}
	if err := json.Unmarshal(typ, &p.Type); err != nil {
		return fmt.Errorf("pattern: type: %w", err)
	}
	delete(raw, "type")

	p.Params = nil
	if len(raw) == 0 {
		return nil
	}
	p.Params = make(map[string]float64, len(raw))
	for k, v := range raw {
		var f float64
		if err := json.Unmarshal(v, &f); err != nil {
			return fmt.Errorf("pattern %s: param %q is not a number", p.Type, k)
		}
		p.Params[k] = f
	}
	return nil
}

func (p Pattern) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Params)+1)
	for k, v := range p.Params {
		out[k] = v
	}
	out["type"] = p.Type
	return json.Marshal(out)
}

// Decode reads one level document. Unknown keys are rejected.
func Decode(r io.Reader) (*Level, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var lvl Level
	if err := dec.Decode(&lvl); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Encode writes lvl as indented JSON.
func Encode(w io.Writer, lvl *Level) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(lvl)
}

// Elevations returns the elevations of lvl in ascending order.
func (lvl *Level) Elevations() []int {
	out := make([]int, 0, len(lvl.Layers))
	for _, l := range lvl.Layers {
		out = append(out, l.Elevation)
	}
	sort.Ints(out)
	return out
}
