package renderer

import (
	"testing"

	options "github.com/richinsley/rhino/options"
)

func recordOptions(out string) *options.RhinoOptions {
	width, height, fps := 640, 480, 30
	return &options.RhinoOptions{
		Width:      &width,
		Height:     &height,
		FPS:        &fps,
		OutputFile: &out,
	}
}

func TestEncoderArgs(t *testing.T) {
	in, out := EncoderArgs(recordOptions("demo.mp4"))
	if in["s"] != "640x480" {
		t.Errorf("input size: have %v", in["s"])
	}
	if in["pix_fmt"] != "rgba" || in["format"] != "rawvideo" {
		t.Errorf("input format: have %v %v", in["format"], in["pix_fmt"])
	}
	if in["framerate"] != 30 {
		t.Errorf("framerate: have %v", in["framerate"])
	}
	if out["vf"] != "vflip" {
		t.Errorf("output must flip GL rows, have vf=%v", out["vf"])
	}
	if out["c:v"] == nil {
		t.Error("no video codec selected for mp4")
	}

	_, out = EncoderArgs(recordOptions("demo.WEBM"))
	if out["c:v"] != "libvpx-vp9" {
		t.Errorf("webm codec: have %v", out["c:v"])
	}

	_, out = EncoderArgs(recordOptions("demo.gif"))
	if _, ok := out["pix_fmt"]; ok {
		t.Error("gif output should not force yuv420p")
	}
}

func TestFrameCount(t *testing.T) {
	tests := []struct {
		duration float64
		fps      int
		want     int64
	}{
		{10, 60, 600},
		{0.5, 30, 15},
		{0.51, 30, 16},
		{2.2, 25, 55},
		{0.28, 25, 7},
		{1.12, 25, 28},
		{0.1, 30, 3},
		{0, 60, 0},
		{1, 0, 0},
	}
	for _, tt := range tests {
		if got := FrameCount(tt.duration, tt.fps); got != tt.want {
			t.Errorf("FrameCount(%v, %d): have %d, want %d", tt.duration, tt.fps, got, tt.want)
		}
	}
}
