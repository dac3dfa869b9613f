//go:build js && wasm

// gridsnake-wasm runs the snake game in a browser page: a square canvas
// sized to the shorter side of the window, a border on its free side and
// a score line next to it. Arrow keys and swipes steer.
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o gridsnake.wasm ./cmd/gridsnake-wasm
//
// The page may pass ?difficulty=easy|normal|hard|fixed and ?seed=N.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"syscall/js"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// jsCanvas draws through a CanvasRenderingContext2D.
type jsCanvas struct {
	el  js.Value
	ctx js.Value
}

func (c *jsCanvas) Size() (float64, float64) {
	return c.el.Get("width").Float(), c.el.Get("height").Float()
}

func (c *jsCanvas) Clear() {
	w, h := c.Size()
	c.ctx.Call("clearRect", 0, 0, w, h)
}

func (c *jsCanvas) SetFill(col core.Color) {
	c.ctx.Set("fillStyle", col.Hex())
}

func (c *jsCanvas) FillRect(x, y, w, h float64) {
	c.ctx.Call("fillRect", x, y, w, h)
}

func (c *jsCanvas) FillCircle(cx, cy, r float64) {
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", cx, cy, r, 0, 2*math.Pi, true)
	c.ctx.Call("closePath")
	c.ctx.Call("fill")
}

// page holds the DOM handles and the running game.
type page struct {
	window   js.Value
	doc      js.Value
	scoreDiv js.Value
	canvas   *jsCanvas

	cfg    config.SnakeConfig
	game   *snake.Game
	clock  *core.FrameClock
	input  core.InputFrame
	swipe  snake.Swipe
	shown  int // Score currently in the score div
	logger *log.Logger

	funcs []js.Func // Callbacks kept alive for the page lifetime
}

func main() {
	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridsnake",
	})

	cfg := config.DefaultSnakeConfig()
	params := js.Global().Get("URLSearchParams").New(js.Global().Get("location").Get("search"))
	if v := params.Call("get", "difficulty"); !v.IsNull() {
		preset, err := config.ParsePreset(v.String())
		if err != nil {
			logger.Warn("ignoring difficulty", "err", err)
		}
		config.ApplySnakePreset(&cfg, preset)
	}
	var seed int64
	if v := params.Call("get", "seed"); !v.IsNull() {
		if n, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			seed = n
		}
	}
	seed = core.ResolveSeed(seed, time.Now())

	p := newPage(cfg, logger)
	p.game.Reset(core.RuntimeConfig{TickRate: cfg.Timing.FrameRate, Seed: seed})
	p.layout()
	p.listen()
	p.requestFrame()

	logger.Info("game started", "seed", seed, "interval", p.game.Interval())
	select {}
}

func newPage(cfg config.SnakeConfig, logger *log.Logger) *page {
	window := js.Global()
	doc := window.Get("document")

	el := doc.Call("querySelector", "canvas")
	if el.IsNull() {
		el = doc.Call("createElement", "canvas")
		doc.Get("body").Call("appendChild", el)
	}
	div := doc.Call("querySelector", "div")
	if div.IsNull() {
		div = doc.Call("createElement", "div")
		doc.Get("body").Call("appendChild", div)
	}

	return &page{
		window:   window,
		doc:      doc,
		scoreDiv: div,
		canvas:   &jsCanvas{el: el, ctx: el.Call("getContext", "2d")},
		cfg:      cfg,
		game:     snake.New(cfg),
		clock:    core.NewFrameClock(cfg.Timing.FrameRate),
		input:    core.NewInputFrame(),
		shown:    -1,
		logger:   logger,
	}
}

// layout sizes the canvas to the shorter window side and puts the border
// and score on the longer one.
func (p *page) layout() {
	w := p.window.Get("innerWidth").Float()
	h := p.window.Get("innerHeight").Float()
	side := math.Min(w, h)
	cell := side / float64(p.cfg.Grid.Size)
	border := fmt.Sprintf("solid %gpx %s", cell*p.cfg.Canvas.Border, p.cfg.Colors.Border.Hex())

	p.doc.Get("body").Get("style").Set("background", p.cfg.Colors.Background.Hex())

	el := p.canvas.el
	el.Set("width", side)
	el.Set("height", side)
	style := el.Get("style")
	style.Set("position", "absolute")
	style.Set("top", "0")
	style.Set("left", "0")
	style.Set("width", fmt.Sprintf("%gpx", side))
	style.Set("height", fmt.Sprintf("%gpx", side))

	div := p.scoreDiv.Get("style")
	div.Set("color", p.cfg.Colors.Border.Hex())
	div.Set("position", "absolute")
	div.Set("font-size", "5vw")

	offset := fmt.Sprintf("calc(%gpx + 2vw)", side+cell*p.cfg.Canvas.Border)
	if w > h {
		style.Set("borderRight", border)
		style.Set("borderBottom", "")
		div.Set("top", "2vw")
		div.Set("left", offset)
	} else {
		style.Set("borderRight", "")
		style.Set("borderBottom", border)
		div.Set("top", offset)
		div.Set("left", "2vw")
	}

	p.canvas.Clear()
	p.shown = -1
}

func (p *page) on(target js.Value, event string, fn func(e js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	p.funcs = append(p.funcs, f)
	target.Call("addEventListener", event, f)
}

// listen wires keyboard, touch and resize events into the game.
func (p *page) listen() {
	p.on(p.window, "keydown", func(e js.Value) {
		switch e.Get("key").String() {
		case "ArrowUp":
			p.input.Set(core.ActionUp)
		case "ArrowDown":
			p.input.Set(core.ActionDown)
		case "ArrowLeft":
			p.input.Set(core.ActionLeft)
		case "ArrowRight":
			p.input.Set(core.ActionRight)
		case "p", "P", "Escape":
			p.input.Set(core.ActionPause)
		}
	})

	touch := func(e js.Value) (int, int) {
		t := e.Get("touches").Index(0)
		return t.Get("clientX").Int(), t.Get("clientY").Int()
	}
	p.on(p.window, "touchstart", func(e js.Value) {
		p.swipe.Begin(touch(e))
	})
	p.on(p.window, "touchmove", func(e js.Value) {
		p.swipe.Move(touch(e))
	})
	p.on(p.window, "touchend", func(e js.Value) {
		p.input.Set(p.swipe.End())
	})

	p.on(p.window, "resize", func(js.Value) {
		p.layout()
		p.game.Restart()
		p.logger.Debug("resized", "width", p.window.Get("innerWidth").Int(),
			"height", p.window.Get("innerHeight").Int())
	})
}

func (p *page) requestFrame() {
	var f js.Func
	f = js.FuncOf(func(this js.Value, args []js.Value) any {
		p.frame(time.Now())
		p.window.Call("requestAnimationFrame", f)
		return nil
	})
	p.funcs = append(p.funcs, f)
	p.window.Call("requestAnimationFrame", f)
}

// frame steps the game for the elapsed display frames and repaints.
func (p *page) frame(now time.Time) {
	n := p.clock.Advance(now)
	for i := range n {
		result := p.game.Step(p.input)
		if i == 0 {
			p.input.Clear()
		}
		if result.Round != nil {
			p.endRound(*result.Round)
		}
	}
	if n == 0 {
		return
	}

	p.game.Paint(p.canvas)
	if s := p.game.Score(); s != p.shown {
		p.scoreDiv.Set("innerText", snake.ScoreText(s))
		p.shown = s
	}
}

// endRound reports a finished round with blocking alerts. The clock is
// restarted so the time spent in the dialogs is not replayed.
func (p *page) endRound(r core.RoundResult) {
	p.logger.Info("round over", "score", r.Score, "length", r.Length, "moves", r.Ticks, "won", r.Won)

	title := "Game Over!"
	if r.Won {
		title = "You Win!"
	}
	p.window.Call("alert", title)
	p.window.Call("alert", fmt.Sprintf("Your Score: %d", r.Score))

	p.game.Acknowledge()
	p.clock.Reset()
}
