package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/richinsley/rhino/glfwcontext"
	"github.com/richinsley/rhino/headless"
	options "github.com/richinsley/rhino/options"
	renderer "github.com/richinsley/rhino/renderer"
)

func init() {
	runtime.LockOSThread()
}

func parseOptions() (*options.RhinoOptions, *bool) {
	opts := &options.RhinoOptions{
		Scene:        flag.String("scene", "scene", "Scene to render ("+strings.Join(renderer.SceneNames(), ", ")+")"),
		Title:        flag.String("title", options.DefaultTitle, "Window title"),
		Help:         flag.Bool("help", false, "Show help message"),
		List:         flag.Bool("list", false, "List the available scenes and exit"),
		Width:        flag.Int("width", options.DefaultWidth, "Width of the window or recording"),
		Height:       flag.Int("height", options.DefaultHeight, "Height of the window or recording"),
		Fullscreen:   flag.Bool("fullscreen", false, "Start fullscreen on the primary monitor"),
		VertexPath:   flag.String("vertex", "", "Vertex shader file (requires -fragment)"),
		FragmentPath: flag.String("fragment", "", "Fragment shader file (requires -vertex)"),
		TexturePaths: flag.String("texture", "", "Comma separated image files for texture units 0, 1, ..."),

		// Recording flags
		Record:     flag.Bool("record", false, "Render offscreen and encode to -output instead of opening a window"),
		Duration:   flag.Float64("duration", 10.0, "Duration to record in seconds"),
		FPS:        flag.Int("fps", 60, "Frames per second for recording"),
		OutputFile: flag.String("output", "output.mp4", "Output file name for recording"),
		FFMPEGPath: flag.String("ffmpeg", "", "Path to ffmpeg executable"),
	}
	useHeadless := flag.Bool("headless", false, "Record through an EGL pbuffer instead of a hidden GLFW window (Linux)")
	flag.Parse()
	return opts, useHeadless
}

func main() {
	opts, useHeadless := parseOptions()

	if *opts.Help {
		fmt.Println("Rhino OpenGL harness")
		flag.PrintDefaults()
		return
	}
	if *opts.List {
		for _, name := range renderer.SceneNames() {
			fmt.Println(name)
		}
		return
	}
	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	scene, err := renderer.NewScene(*opts.Scene)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *opts.Record && *useHeadless {
		if err := recordHeadless(opts, scene); err != nil {
			log.Fatalf("Headless recording failed: %v", err)
		}
		log.Printf("Successfully rendered to %s", *opts.OutputFile)
		return
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	// If recording, the window will be hidden
	ctx, err := glfwcontext.New(opts, !*opts.Record)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer ctx.Shutdown()

	r, err := renderer.NewRenderer(opts, ctx)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	if *opts.Record {
		log.Println("Starting offscreen render loop...")
		if err := r.RunOffscreen(scene); err != nil {
			log.Fatalf("Offscreen rendering failed: %v", err)
		}
		log.Printf("Successfully rendered to %s", *opts.OutputFile)
		return
	}

	r.AttachWindow(ctx)
	log.Printf("Starting interactive render loop with scene %s...", *opts.Scene)
	if err := r.Run(scene); err != nil {
		log.Printf("Render loop failed: %v", err)
		ctx.Shutdown()
		glfwcontext.TerminateGraphics()
		os.Exit(1)
	}
	log.Println("exited program successfully")
}

func recordHeadless(opts *options.RhinoOptions, scene renderer.Scene) error {
	win, err := headless.NewHeadless(*opts.Width, *opts.Height)
	if err != nil {
		return err
	}
	defer win.Shutdown()

	r, err := renderer.NewRenderer(opts, win)
	if err != nil {
		return err
	}
	return r.RunOffscreen(scene)
}
