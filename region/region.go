// Package region models the rectangular zones a floor layer is built from.
// A Region is a closed tagged union over wall, floor, liquid and object
// variants; callers switch on Kind instead of probing types.
package region

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/geom"
	"github.com/milk9111/topdown/prefabs"
)

var ErrInvalidRegion = errors.New("region: invalid region")

type Kind int

const (
	KindWall Kind = iota
	KindFloor
	KindLiquid
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return prefabs.RegionKindWall
	case KindFloor:
		return prefabs.RegionKindFloor
	case KindLiquid:
		return prefabs.RegionKindLiquid
	case KindObject:
		return prefabs.RegionKindObject
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a regions.yaml kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case prefabs.RegionKindWall:
		return KindWall, nil
	case prefabs.RegionKindFloor:
		return KindFloor, nil
	case prefabs.RegionKindLiquid:
		return KindLiquid, nil
	case prefabs.RegionKindObject:
		return KindObject, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidRegion, s)
}

// LiquidProps is the payload of KindLiquid regions.
type LiquidProps struct {
	SpeedFactor  float64
	DamagePerSec float64
}

// ObjectProps is the payload of KindObject regions.
type ObjectProps struct {
	Interactable bool
}

// Region is an immutable rectangle tagged with its variant. Only the payload
// matching Kind is meaningful.
type Region struct {
	Rect   common.Rect
	Type   string
	Kind   Kind
	Solid  bool
	Liquid LiquidProps
	Object ObjectProps
	Color  color.RGBA
}

func checkRect(r common.Rect) error {
	if !r.Valid() {
		return fmt.Errorf("%w: non-positive size %vx%v", ErrInvalidRegion, r.Width, r.Height)
	}
	return nil
}

func NewWall(r common.Rect, c color.RGBA) (Region, error) {
	if err := checkRect(r); err != nil {
		return Region{}, err
	}
	return Region{Rect: r, Type: prefabs.RegionKindWall, Kind: KindWall, Solid: true, Color: c}, nil
}

func NewFloor(r common.Rect, typ string, c color.RGBA) (Region, error) {
	if err := checkRect(r); err != nil {
		return Region{}, err
	}
	return Region{Rect: r, Type: typ, Kind: KindFloor, Color: c}, nil
}

// NewLiquid builds a non-solid region that slows and may damage whatever
// stands in it.
func NewLiquid(r common.Rect, typ string, speedFactor, damagePerSec float64, c color.RGBA) (Region, error) {
	if err := checkRect(r); err != nil {
		return Region{}, err
	}
	if speedFactor <= 0 || speedFactor > 1 {
		return Region{}, fmt.Errorf("%w: %s speed factor %v outside (0,1]", ErrInvalidRegion, typ, speedFactor)
	}
	if damagePerSec < 0 {
		return Region{}, fmt.Errorf("%w: %s negative damage %v", ErrInvalidRegion, typ, damagePerSec)
	}
	return Region{
		Rect:   r,
		Type:   typ,
		Kind:   KindLiquid,
		Liquid: LiquidProps{SpeedFactor: speedFactor, DamagePerSec: damagePerSec},
		Color:  c,
	}, nil
}

// NewObject builds a solid prop such as a chest.
func NewObject(r common.Rect, typ string, interactable bool, c color.RGBA) (Region, error) {
	if err := checkRect(r); err != nil {
		return Region{}, err
	}
	return Region{
		Rect:   r,
		Type:   typ,
		Kind:   KindObject,
		Solid:  true,
		Object: ObjectProps{Interactable: interactable},
		Color:  c,
	}, nil
}

// FromStat builds the variant described by a regions.yaml entry. The stat's
// solid flag wins for every variant except liquids, which are never solid.
func FromStat(r common.Rect, typ string, stat prefabs.RegionStat) (Region, error) {
	kind, err := ParseKind(stat.Kind)
	if err != nil {
		return Region{}, fmt.Errorf("%s: %w", typ, err)
	}

	c := stat.Color.RGBA8()
	var reg Region
	switch kind {
	case KindWall:
		reg, err = NewWall(r, c)
		reg.Type = typ
	case KindFloor:
		reg, err = NewFloor(r, typ, c)
	case KindLiquid:
		return NewLiquid(r, typ, stat.SpeedFactor, stat.DamagePerSec, c)
	case KindObject:
		reg, err = NewObject(r, typ, stat.Interactable, c)
	}
	if err != nil {
		return Region{}, err
	}
	reg.Solid = stat.Solid
	return reg, nil
}

// Overlaps reports whether a circle strictly overlaps the region.
func (r Region) Overlaps(pos cp.Vector, radius float64) bool {
	return geom.CircleOverlapsRect(pos, radius, r.Rect)
}

func (r Region) IsLiquid() bool { return r.Kind == KindLiquid }

func (r Region) Interactable() bool {
	return r.Kind == KindObject && r.Object.Interactable
}
