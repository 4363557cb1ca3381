package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/levels"
	"github.com/sirupsen/logrus"
)

func main() {
	mapName := flag.String("map", levels.DefaultLevel, "map file on disk or embedded level name")
	debug := flag.Bool("debug", false, "enable debug overlay")
	logLevel := flag.String("log-level", "info", "logrus level (debug, info, warn, error)")
	watch := flag.Bool("watch", false, "hot reload prefabs, scripts and levels on change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	lvl, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.WithError(err).Fatal("bad -log-level")
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("topdown")

	game, err := NewGame(Options{MapName: *mapName, Debug: *debug, Watch: *watch})
	if err != nil {
		logrus.WithError(err).Fatal("failed to start")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logrus.WithError(err).Fatal("game exited")
	}
}
