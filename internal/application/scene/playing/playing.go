// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/junglejr/internal/application/remote"
	"github.com/younwookim/junglejr/internal/application/replay"
	"github.com/younwookim/junglejr/internal/application/scene"
	"github.com/younwookim/junglejr/internal/application/session"
	"github.com/younwookim/junglejr/internal/application/state"
	"github.com/younwookim/junglejr/internal/application/system"
	"github.com/younwookim/junglejr/internal/domain/entity"
	"github.com/younwookim/junglejr/internal/infrastructure/config"
	"github.com/younwookim/junglejr/internal/infrastructure/wire"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{20, 36, 28, 255}
	colorPlatform = color.RGBA{120, 84, 52, 255}
	colorVine     = color.RGBA{60, 160, 70, 255}
	colorWater    = color.RGBA{40, 90, 200, 200}
	colorGoal     = color.RGBA{255, 215, 0, 160}
	colorPlayer   = color.RGBA{230, 200, 120, 255}
	colorDead     = color.RGBA{120, 120, 120, 255}
	colorRedCroc  = color.RGBA{210, 60, 50, 255}
	colorBlueCroc = color.RGBA{60, 110, 220, 255}
	colorFruit    = color.RGBA{250, 170, 40, 255}
	colorRemote   = color.RGBA{255, 255, 255, 120}
)

// IntentSource yields one intent per frame
type IntentSource interface {
	GetInput() system.Intent
}

// KeySource reports single-frame key presses for scene controls
type KeySource interface {
	JustPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// Link is an open server connection
type Link interface {
	Drain() []wire.Frame
	Err() error
	Close() error
}

// Options configures a Playing scene. Link and Dispatcher are both set for
// online play and both nil offline.
type Options struct {
	Level      string
	Input      IntentSource
	Keys       KeySource
	Link       Link
	Dispatcher *remote.Dispatcher
	Authority  remote.Authority
	RecordPath string
}

// Playing is the main gameplay scene
type Playing struct {
	tuning     *config.TuningConfig
	session    *session.Session
	authority  remote.Authority
	dispatcher *remote.Dispatcher
	link       Link
	input      IntentSource
	keys       KeySource
	state      state.GameState
	screenW    int
	screenH    int
	levelName  string

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene over s.
// If opts.RecordPath is not empty, every stepped frame is recorded.
func New(tuning *config.TuningConfig, s *session.Session, opts Options) *Playing {
	if opts.Input == nil {
		opts.Input = system.NewInputSystem(system.DefaultKeyBindings())
	}
	if opts.Keys == nil {
		opts.Keys = ebitenKeys{}
	}
	if opts.Authority == nil {
		if opts.Dispatcher != nil {
			opts.Authority = opts.Dispatcher
		} else {
			opts.Authority = remote.NewLocal(s, nil)
		}
	}

	p := &Playing{
		tuning:         tuning,
		session:        s,
		authority:      opts.Authority,
		dispatcher:     opts.Dispatcher,
		link:           opts.Link,
		input:          opts.Input,
		keys:           opts.Keys,
		state:          state.StatePlaying,
		screenW:        tuning.Display.ScreenWidth,
		screenH:        tuning.Display.ScreenHeight,
		levelName:      opts.Level,
		recordFilename: opts.RecordPath,
	}
	if p.link != nil {
		p.state = state.StateConnecting
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(opts.Level)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}
	return p
}

// State returns the scene phase
func (p *Playing) State() state.GameState {
	return p.state
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if p.keys.JustPressed(ebiten.KeyQ) {
		return nil, scene.ErrQuit
	}
	if p.keys.JustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	if err := p.pump(); err != nil {
		return nil, err
	}

	switch p.state {
	case state.StateConnecting:
		if p.dispatcher != nil && p.dispatcher.Ready() {
			p.state = state.StatePlaying
		}
	case state.StatePlaying:
		p.updatePlaying()
	case state.StatePaused:
		if p.keys.JustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateGameOver:
		p.updateGameOver()
	}

	return nil, nil
}

// pump applies every frame the server sent since the last update
func (p *Playing) pump() error {
	if p.link == nil || p.dispatcher == nil {
		return nil
	}

	if err := p.dispatcher.HandleAll(p.link.Drain()); err != nil {
		log.Printf("server frame: %v", err)
	}
	if err := p.link.Err(); err != nil {
		return fmt.Errorf("server connection: %w", err)
	}

	switch p.authority.HUD().Role {
	case remote.RoleSpectator:
		p.state = state.StateSpectating
	case remote.RoleRejected:
		return fmt.Errorf("server rejected the connection")
	}
	return nil
}

func (p *Playing) updatePlaying() {
	// Pausing would desync an online round
	if p.link == nil && p.keys.JustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}

	in := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	if _, err := p.authority.Step(in); err != nil {
		log.Printf("step %d: %v", p.session.Tick(), err)
	}

	if p.authority.HUD().GameOver {
		p.state = state.StateGameOver
		p.saveRecording()
	}
}

func (p *Playing) updateGameOver() {
	if !p.authority.HUD().GameOver {
		p.state = state.StatePlaying
		return
	}
	if p.keys.JustPressed(ebiten.KeyR) || p.keys.JustPressed(ebiten.KeySpace) {
		if err := p.authority.RequestRestart(); err != nil {
			log.Printf("restart: %v", err)
			return
		}
		if p.recordFilename != "" {
			p.recorder = replay.NewRecorder(p.levelName)
			log.Printf("Recording restarted")
		}
		if !p.authority.HUD().GameOver {
			p.state = state.StatePlaying
		}
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawGeometry(screen)
	p.drawEntities(screen)
	p.drawUI(screen)

	switch p.state {
	case state.StateConnecting:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 160}, "CONNECTING...")
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		hud := p.authority.HUD()
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180},
			fmt.Sprintf("GAME OVER\n\nScore: %d\n\nPress R to restart", hud.Score))
	}
}

func fillRect(screen *ebiten.Image, r entity.Rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (p *Playing) drawGeometry(screen *ebiten.Image) {
	g := p.session.Geometry()
	if g == nil {
		return
	}

	for _, w := range g.Water {
		fillRect(screen, w, colorWater)
	}
	if g.WaterLine > 0 {
		fillRect(screen, entity.Rect{
			X: g.Bounds.X, Y: g.WaterLine,
			W: g.Bounds.W, H: g.Bounds.Bottom() - g.WaterLine,
		}, colorWater)
	}
	for _, pl := range g.Platforms {
		fillRect(screen, pl, colorPlatform)
	}
	for _, v := range g.Vines {
		fillRect(screen, v, colorVine)
	}
	if !g.Goal.Empty() {
		fillRect(screen, g.Goal, colorGoal)
	}
}

func (p *Playing) drawEntities(screen *ebiten.Image) {
	s := p.session

	for i := range s.Fruits.Slots {
		if f := &s.Fruits.Slots[i]; f.Active {
			fillRect(screen, f.Rect(), colorFruit)
		}
	}
	for i := range s.Crocodiles.Slots {
		c := &s.Crocodiles.Slots[i]
		if !c.Active {
			continue
		}
		col := colorRedCroc
		if c.Variant == entity.CrocBlue {
			col = colorBlueCroc
		}
		fillRect(screen, c.Rect(), col)
	}

	if p.state == state.StateSpectating && p.dispatcher != nil {
		for _, e := range p.dispatcher.RemoteEntities() {
			fillRect(screen, entity.Rect{X: int(e.X), Y: int(e.Y), W: 8, H: 8}, colorRemote)
		}
		return
	}

	col := colorPlayer
	if s.Player.Dead {
		col = colorDead
	}
	fillRect(screen, s.Player.Rect(), col)

	// Hitbox debug
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		fillRect(screen, s.Player.Rect().ProbeRect(), colorRemote)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	hud := p.authority.HUD()
	status := fmt.Sprintf("Lives: %d  Score: %d  Speed: %d", hud.Lives, hud.Score, p.session.CrocSpeed())
	ebitenutil.DebugPrintAt(screen, status, 4, p.screenH-16)

	if p.state == state.StateSpectating {
		ebitenutil.DebugPrint(screen, "SPECTATING | Q: Quit")
		return
	}
	ebitenutil.DebugPrint(screen, "Arrows: Move/Climb | Space: Jump | ESC: Pause | Q: Quit")
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), c, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit saves any recording and closes the server link
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.link != nil {
		if err := p.link.Close(); err != nil {
			log.Printf("close server link: %v", err)
		}
	}
}
