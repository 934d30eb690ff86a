package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/faiface/mainthread"
	"github.com/memmaker/tileworld/engine/tilemap"
	"github.com/memmaker/tileworld/engine/util"
	"github.com/memmaker/tileworld/engine/voxel"
	"github.com/memmaker/tileworld/game"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

type options struct {
	ticks       int
	level       int
	interactive bool
	viewFile    string
	viewMode    string
	shapeFile   string
	debug       bool
}

func main() {
	var opts options
	flag.IntVar(&opts.ticks, "ticks", tilemap.TickScale*2, "number of ticks to simulate")
	flag.IntVar(&opts.level, "level", 0, "z level to print")
	flag.BoolVar(&opts.interactive, "interactive", false, "open the terminal viewer")
	flag.StringVar(&opts.viewFile, "view", "", "write a voxel view of the final state to this PNG file")
	flag.StringVar(&opts.viewMode, "mode", "isometric", "view mode for -view: isometric or strategy")
	flag.StringVar(&opts.shapeFile, "export-stairs", "", "write the stairs voxel map to this NBT file")
	flag.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flag.Parse()

	if opts.debug {
		util.GLOBAL_LOG_LEVEL = util.LogLevelDebug
	}

	var err error
	mainthread.Run(func() {
		err = run(opts)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	battle, err := newDemoBattle()
	if err != nil {
		return errors.Wrap(err, "setting up the demo")
	}
	defer battle.Shutdown()

	if err := issueDemoOrders(battle); err != nil {
		return err
	}
	if opts.interactive {
		return runViewer(battle)
	}

	timer := util.NewTimer()
	for i := 0; i < opts.ticks; i++ {
		done := timer.Start("tick")
		if err := mainthread.CallErr(battle.Tick); err != nil {
			return errors.Wrapf(err, "tick %d", battle.Ticks())
		}
		done()
	}
	util.LogSystemInfo(fmt.Sprintf("[Demo] simulated %d ticks", battle.Ticks()))

	width := 0
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}
	fmt.Println(strings.Join(renderLevel(battle.Map, int32(opts.level), width), "\n"))

	if opts.viewFile != "" {
		done := timer.Start("voxel view")
		if err := writeVoxelView(battle.Map, opts.viewFile, opts.viewMode); err != nil {
			return err
		}
		done()
	}
	util.LogSystemInfo(timer.String())
	if opts.shapeFile != "" {
		if err := writeStairsShape(battle.Map.VoxelMapSize, opts.shapeFile); err != nil {
			return err
		}
	}
	return nil
}

func writeVoxelView(m *tilemap.TileMap, filename, mode string) error {
	viewMode := tilemap.TileViewModeIsometric
	if mode == "strategy" {
		viewMode = tilemap.TileViewModeStrategy
	}
	transform := tilemap.NewTransform(viewMode)
	bounds := viewBounds(m, transform)
	img := m.DumpVoxelView(bounds, transform, float32(m.Size.Z), false, false)
	if img == nil {
		return errors.New("nothing to render")
	}
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "creating view file")
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return errors.Wrap(err, "encoding view")
	}
	return errors.Wrap(file.Close(), "closing view file")
}

// viewBounds returns the screen rectangle covering every corner of the map.
func viewBounds(m *tilemap.TileMap, transform tilemap.TileTransform) image.Rectangle {
	var bounds image.Rectangle
	for _, corner := range []voxel.Int3{
		{}, {X: m.Size.X}, {Y: m.Size.Y}, {X: m.Size.X, Y: m.Size.Y},
		{Z: m.Size.Z}, {X: m.Size.X, Z: m.Size.Z}, {Y: m.Size.Y, Z: m.Size.Z}, m.Size,
	} {
		p := transform.TileToScreenCoords(corner.ToVec3())
		pt := image.Point{X: int(p.X()), Y: int(p.Y())}
		bounds = bounds.Union(image.Rectangle{Min: pt, Max: pt.Add(image.Point{X: 1, Y: 1})})
	}
	return bounds
}

func writeStairsShape(size voxel.Int3, filename string) error {
	stairs := game.StairsShape(size)
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "creating shape file")
	}
	if err := voxel.EncodeVoxelMap(file, stairs); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "closing shape file")
}
