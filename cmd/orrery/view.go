package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/system"
)

const helpLine = "space spawn  b batch  i inner  x remove  [ ] speed  0 reset  p pause  +/- zoom  f fit  m mute  q quit"

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Animate the system in the terminal",
	RunE:  runView,
}

func init() {
	viewCmd.Flags().Bool("audio", true, "play impact and escape sounds")
	_ = viper.BindPFlag("audio", viewCmd.Flags().Lookup("audio"))
}

// viewer holds interactive state between frames
type viewer struct {
	s        *session
	screen   tcell.Screen
	renderer *render.Renderer
	sound    *audio.Engine

	timeSpeed float64
	paused    bool
	quit      bool
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	closer, err := setupLogging(logDir, cfg.Debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			emergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mORRERY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	v := &viewer{
		s:         s,
		screen:    screen,
		renderer:  render.NewRenderer(),
		timeSpeed: cfg.TimeSpeed,
	}
	w, h := screen.Size()
	v.renderer.Camera().Fit(cfg.SystemRadius, w, h)

	if cfg.Audio {
		v.sound = audio.NewEngine(nil)
		if err := v.sound.Start(); err != nil {
			log.Printf("audio start failed: %v (continuing without audio)", err)
			v.sound = nil
		} else {
			defer v.sound.Stop()
		}
	}

	return v.loop(cfg)
}

func (v *viewer) loop(cfg config.Config) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go v.poll(events, done)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FrameRate))
	defer ticker.Stop()

	last := time.Now()
	for !v.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			v.handle(ev)

		case now := <-ticker.C:
			delta := min(now.Sub(last).Seconds(), parameter.MaxFrameDelta)
			last = now
			if err := v.frame(delta); err != nil {
				return err
			}
		}
	}
	return nil
}

// poll forwards screen events until the screen finalizes or done closes
func (v *viewer) poll(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// frame advances the world once and redraws
func (v *viewer) frame(delta float64) error {
	v.s.applyReloads()

	snap, err := v.s.world.Advance(system.Frame{
		Delta:        delta,
		TimeSpeed:    v.timeSpeed,
		Paused:       v.paused,
		SystemRadius: v.s.cfg.SystemRadius,
	})
	if err != nil {
		return err
	}

	events := v.s.drainEvents()
	if v.sound != nil {
		v.sound.HandleEvents(events)
	}

	v.renderer.Draw(v.screen, snap, v.status(snap), helpLine)
	v.screen.Show()
	return nil
}

func (v *viewer) status(snap *system.Snapshot) string {
	state := ""
	if v.paused {
		state = "  PAUSED"
	}
	if v.sound != nil && v.sound.IsMuted() {
		state += "  muted"
	}
	return fmt.Sprintf("t=%.1f  speed=%.2fx  bodies=%d  explosions=%d%s",
		snap.Time, v.timeSpeed, len(snap.FreeBodies), len(snap.Explosions), state)
}

func (v *viewer) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			v.quit = true
			return
		case tcell.KeyRune:
		default:
			return
		}
		v.handleRune(ev.Rune())
	}
}

// applySpeedKey handles the time controls; any speed change also resumes a paused run
func (v *viewer) applySpeedKey(r rune) {
	switch r {
	case '[':
		v.timeSpeed = system.HalveTimeSpeed(v.timeSpeed)
		v.paused = false
	case ']':
		v.timeSpeed = system.DoubleTimeSpeed(v.timeSpeed)
		v.paused = false
	case '0':
		v.timeSpeed = 1
		v.paused = false
	case 'p':
		v.paused = !v.paused
	}
}

func (v *viewer) handleRune(r rune) {
	var err error
	switch r {
	case 'q':
		v.quit = true
	case ' ':
		// Key repeat arrives as a stream of presses; the spawner throttles it
		_, _, err = v.s.spawner.SpawnHeld(time.Now())
	case 'b':
		_, err = v.s.spawner.SpawnBatch(parameter.BatchSpawnCount)
	case 'i':
		_, err = v.s.spawner.SpawnInner(parameter.InnerSpawnCount)
	case 'x':
		v.s.world.RemoveOldest()
	case '[', ']', '0', 'p':
		v.applySpeedKey(r)
	case '+', '=':
		v.renderer.Camera().ZoomIn()
	case '-':
		v.renderer.Camera().ZoomOut()
	case 'f':
		w, h := v.screen.Size()
		v.renderer.Camera().Fit(v.s.cfg.SystemRadius, w, h)
	case 'm':
		if v.sound != nil {
			v.sound.ToggleMute()
		}
	}
	if err != nil {
		log.Printf("spawn: %v", err)
	}
}
