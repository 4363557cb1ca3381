package main

import (
	"encoding/json"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/levels"
	"golang.design/x/clipboard"
)

// clip copies level snippets to the system clipboard while authoring maps.
type clip struct {
	ok bool
}

func newClip() *clip {
	if err := clipboard.Init(); err != nil {
		log.WithError(err).Warn("clipboard unavailable")
		return &clip{}
	}
	return &clip{ok: true}
}

// CopySpawn writes pos as a player_start object ready to paste into a level.
func (c *clip) CopySpawn(pos cp.Vector, layer int) error {
	if !c.ok {
		return nil
	}
	data, err := json.Marshal(levels.Spawn{X: float64(int(pos.X)), Y: float64(int(pos.Y)), Layer: layer})
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	log.WithField("spawn", string(data)).Info("copied to clipboard")
	return nil
}
