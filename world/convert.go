package world

import (
	"fmt"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/region"
	"github.com/milk9111/topdown/stairway"
)

func regionFor(cat *prefabs.Catalog, typ string, r common.Rect) (region.Region, error) {
	stat, ok := cat.Region(typ)
	if !ok {
		return region.Region{}, fmt.Errorf("%w: %q", levels.ErrUnknownRegionType, typ)
	}
	return region.FromStat(r, typ, stat)
}

func stairwayFor(s levels.Stairway, dir stairway.Direction) (stairway.Stairway, error) {
	return stairway.New(s.Bounds(), s.FromLayer, s.ToLayer, dir)
}
