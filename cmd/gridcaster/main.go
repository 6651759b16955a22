package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"chosenoffset.com/gridcaster/dice"
	"chosenoffset.com/gridcaster/internal/config"
	"chosenoffset.com/gridcaster/internal/game"
	"chosenoffset.com/gridcaster/internal/grid"
	"chosenoffset.com/gridcaster/internal/observability"
	ebitenrender "chosenoffset.com/gridcaster/internal/render/ebiten"
	"chosenoffset.com/gridcaster/internal/render/raster"
	"chosenoffset.com/gridcaster/internal/render/terminal"
	"chosenoffset.com/gridcaster/internal/view"
)

func main() {
	flag.Parse()
	log := observability.NewLogger("gridcaster")

	if *rollFlag != 0 || *diceFlag != "" {
		if err := roll(); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
		return
	}

	if *listLevelsFlag != "" {
		if err := listLevels(*listLevelsFlag); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.LoadConfig(*configFlag)
	if err != nil {
		log.Errorf("Failed to load config: %v", err)
		os.Exit(1)
	}
	if *levelFlag != "" {
		cfg.LevelPath = *levelFlag
	}

	level, err := grid.LoadFile(cfg.LevelPath)
	if err != nil {
		log.Errorf("Failed to load level: %v", err)
		os.Exit(1)
	}
	if flagSet("heading") {
		level.Data.Heading = *headingFlag
	}
	log.Infof("Loaded level %q (%dx%d) from %s", level.Data.Name, level.Grid.Cols(), level.Grid.Rows(), cfg.LevelPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	renderer := view.NewRenderer(cfg)
	log = log.With("backend", *backendFlag)
	switch *backendFlag {
	case "window":
		err = runWindow(level, renderer, log)
	case "terminal":
		err = runTerminal(ctx, level, renderer, log)
	case "png":
		err = runPNG(level, renderer, log)
	default:
		err = fmt.Errorf("unknown backend %q", *backendFlag)
	}
	if err != nil && !errors.Is(err, game.ErrQuit) && !errors.Is(err, context.Canceled) {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func roll() error {
	roller := dice.NewRoller(rand.New(rand.NewSource(time.Now().UnixNano())))
	if *rollFlag != 0 {
		n, err := roller.RollDie(*rollFlag)
		if err != nil {
			return err
		}
		fmt.Println(n)
	}
	if *diceFlag != "" {
		res, err := roller.Roll(*diceFlag)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %d %v\n", res.Expression, res.Total, res.Rolls)
	}
	return nil
}

func listLevels(dir string) error {
	levels, err := grid.ScanLevels(dir)
	if err != nil {
		return err
	}
	for _, l := range levels {
		if l.Err != nil {
			fmt.Printf("%-16s %s  (invalid: %v)\n", l.Name, l.Path, l.Err)
			continue
		}
		fmt.Printf("%-16s %s  %dx%d\n", l.Name, l.Path, l.Cols, l.Rows)
	}
	return nil
}

func runWindow(level *grid.Level, renderer *view.Renderer, log observability.Logger) error {
	engine := ebitenrender.NewEngine()
	g := game.New(level, renderer, ebitenrender.NewInputManager(), log)
	g.ShowMap = *topDownFlag
	if *imageFlag != "" {
		img, err := ebitenrender.NewResourceLoader().LoadImage(*imageFlag)
		if err != nil {
			return err
		}
		g.Backdrop = img
	}

	fp := renderer.Config().FirstPerson
	engine.SetWindowSize(fp.Width, fp.Height)
	engine.SetWindowTitle("gridcaster - " + level.Data.Name)
	engine.SetWindowResizable(true)

	log.Infof("Starting window")
	return engine.RunGame(g)
}

func runPNG(level *grid.Level, renderer *view.Renderer, log observability.Logger) error {
	fp := renderer.Config().FirstPerson
	surface := raster.New(fp.Width, fp.Height)

	g := game.New(level, renderer, nil, log)
	g.ShowMap = *topDownFlag
	if *imageFlag != "" {
		img, err := raster.LoadImage(*imageFlag)
		if err != nil {
			return err
		}
		g.Backdrop = img
	}
	g.DrawTo(surface)

	if err := surface.SavePNG(*outFlag); err != nil {
		return err
	}
	log.Infof("Wrote %s", *outFlag)
	return nil
}

func runTerminal(ctx context.Context, level *grid.Level, renderer *view.Renderer, log observability.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	screen.HideCursor()

	fp := renderer.Config().FirstPerson
	surface := terminal.New(screen, fp.Width, fp.Height)
	g := game.New(level, renderer, nil, log)
	g.ShowMap = *topDownFlag

	events := make(chan tcell.Event, 16)
	eg, ctx := errgroup.WithContext(ctx)

	// PollEvent returns nil once the screen is finalised.
	eg.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		defer screen.Fini()

		g.DrawTo(surface)
		screen.Show()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventResize:
					screen.Sync()
					surface.Resize()
				case *tcell.EventKey:
					if ev.Key() == tcell.KeyCtrlC {
						return game.ErrQuit
					}
					if k, ok := terminal.KeyOf(ev); ok {
						if err := g.HandleKey(k); err != nil {
							return err
						}
					}
				}
				g.DrawTo(surface)
				screen.Show()
			}
		}
	})

	return eg.Wait()
}
