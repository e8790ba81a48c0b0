package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/skimline/skimline/internal/config"
	"github.com/skimline/skimline/internal/geom"
	"github.com/skimline/skimline/internal/layout"
	"github.com/skimline/skimline/internal/palette"
	"github.com/skimline/skimline/internal/render"
	"github.com/skimline/skimline/internal/scrollstate"
	"github.com/skimline/skimline/internal/session"
	"github.com/skimline/skimline/internal/timeline"
	"github.com/skimline/skimline/internal/trace"
)

const logFlags = log.Ltime | log.Lshortfile

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	// OpenGL contexts are tied to specific OS threads - let's pin to just one.
	runtime.LockOSThread()
	log.SetFlags(logFlags)

	if os.Getenv("SKIMLINE_DEBUG_RUNTIME") == "1" {
		runtimeLogger = log.New(os.Stdout, "[runtime] ", log.Ltime|log.Lmsgprefix)
	}
}

func makeTitle(tr *trace.Trace, zoom, fps, avgFrameTime float64, renderStats render.Stats) string {
	return fmt.Sprintf("Skimline: %s (%.0fms trace, %d spans, %.2fx zoom, %.1f FPS, %.2fms/frame, %d vertices, %.2fms/prepare, %.2fµs/draw)",
		tr.Name,
		tr.Duration,
		tr.SpanCount(),
		zoom,
		fps,
		avgFrameTime,
		renderStats.VertexCount,
		renderStats.LastPrepareTimeMs,
		renderStats.LastDrawTimeUs,
	)
}

func main() {
	tracePath := flag.String("trace", "", "path to a JSON trace file (a demo trace is generated when empty)")
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	tr := loadTrace(*tracePath, cfg)

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	// Configure GLFW window hints - use OpenGL 4.1.
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(
		cfg.WindowWidth,
		cfg.WindowHeight,
		"Skimline",
		nil, nil,
	)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalf("Failed to initialize OpenGL: %v", err)
	}

	renderer := render.NewRenderer()
	defer renderer.Destroy()
	canvas := render.NewCanvas()

	store := session.Open("skimline")
	surface := layout.NewSurface()

	contentView := timeline.NewContentView(surface, geom.Rect{}, tr)
	panZoomView := layout.NewHorizontalPanAndZoomView(
		surface,
		geom.Rect{},
		contentView,
		contentView.IntrinsicWidth(),
		func(_ layout.View, state scrollstate.State) {
			if err := store.SaveScrollState(tr.Name, state); err != nil {
				log.Printf("WARNING: cannot save session: %v", err)
			}
		},
	)
	surface.SetRootView(panZoomView)

	cw, ch := window.GetFramebufferSize()
	surface.SetBounds(float64(cw), float64(ch))
	renderer.SetView(cw, ch)

	// Restoring goes through the silent setter, so a restored state is not
	// immediately re-saved by the observer above.
	if state, ok := store.LoadScrollState(tr.Name); ok {
		runtimeLogger.Printf("restoring session for %q: offset=%.1f length=%.1f", tr.Name, state.Offset, state.Length)
		panZoomView.SetScrollState(state)
	}

	NewEventHandlers(window, surface, renderer)

	bg := palette.Background
	frameCount, frameTimeSum := 0, 0.0
	lastFPSUpdate := time.Now()

	// Main loop.
	for !window.ShouldClose() {
		frameStart := time.Now()

		if surface.DisplayIfNeeded(canvas) {
			if err := renderer.Prepare(canvas); err != nil {
				log.Fatalf("Failed to prepare frame: %v", err)
			}
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		renderer.Draw()
		window.SwapBuffers()
		glfw.PollEvents()

		frameTime := time.Since(frameStart).Seconds() * 1000.0 // ms
		frameTimeSum += frameTime

		frameCount++
		now := time.Now()
		if now.Sub(lastFPSUpdate) >= time.Second {
			fps := float64(frameCount) / now.Sub(lastFPSUpdate).Seconds()
			avgFrameTime := frameTimeSum / float64(frameCount)
			frameCount, frameTimeSum = 0, 0.0
			lastFPSUpdate = now

			renderStats := renderer.Stats()
			state := panZoomView.ScrollState()
			zoom := state.Length / contentView.IntrinsicWidth()
			window.SetTitle(makeTitle(tr, zoom, fps, avgFrameTime, renderStats))

			runtimeLogger.Println("=== Performance statistics ===")
			runtimeLogger.Printf("Frame rate:     %.1f FPS (%.2f ms/frame)", fps, avgFrameTime)
			runtimeLogger.Printf("Scroll state:   offset=%.1f length=%.1f (container %.0fpx)", state.Offset, state.Length, surface.Bounds().W)
			runtimeLogger.Printf("Geometry:       %d ops, %d vertices, %d triangles", renderStats.OpCount, renderStats.VertexCount, renderStats.VertexCount/3)
			runtimeLogger.Printf("Render time:    %.2f µs (last draw), %.2f ms (last prepare)", renderStats.LastDrawTimeUs, renderStats.LastPrepareTimeMs)
			runtimeLogger.Println("==============================")
		}
	}
}

// loadTrace loads the trace file if one was given, and otherwise generates a
// deterministic demo trace shaped by the config.
func loadTrace(path string, cfg *config.Config) *trace.Trace {
	if path != "" {
		tr, err := trace.Load(path)
		if err != nil {
			log.Fatalf("Failed to load trace: %v", err)
		}
		runtimeLogger.Printf("loaded trace %q: %.0fms, %d tracks, %d spans", tr.Name, tr.Duration, len(tr.Tracks), tr.SpanCount())
		return tr
	}

	s := seed()
	runtimeLogger.Printf("generating demo trace (seed %d)", s)
	return trace.Generate(s, cfg.DemoTracks, cfg.DemoSpansPerTrack)
}

func seed() int64 {
	seedStr := os.Getenv("SKIMLINE_SEED")
	now := time.Now().Unix()
	if seedStr == "" {
		return now
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		log.Fatalf("Invalid SKIMLINE_SEED value '%s': %v", seedStr, err)
	}
	return seed
}
