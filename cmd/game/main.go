// cmd/game/main.go
package main

import (
	"dr-fingers/internal/assets"
	"dr-fingers/internal/config"
	"dr-fingers/internal/state"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	debug          bool
	lastStatsTime  time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	if a.debug && now.Sub(a.lastStatsTime) >= time.Second {
		log.Printf("TPS: %.1f FPS: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
		a.lastStatsTime = now
	}

	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	levelPath := flag.String("level", "", "path to a .lvl file on disk (default: embedded level)")
	debug := flag.Bool("debug", false, "show debug overlay and serve pprof on localhost:6060")
	menu := flag.Bool("menu", true, "start from the main menu; false jumps straight into the level")
	flag.Parse()

	if *debug {
		go func() {
			log.Println(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	am := assets.NewManager(*levelPath)
	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewLoadingState(sm, am, state.Options{
		SkipMenu: !*menu,
		Debug:    *debug,
	}))

	now := time.Now()
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: now,
		debug:          *debug,
		lastStatsTime:  now,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
	am.Cleanup()
}
