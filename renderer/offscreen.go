package renderer

import (
	"fmt"
	"io"
	"log"
	"math"
	"path/filepath"
	"runtime"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	options "github.com/richinsley/rhino/options"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Frame represents a single rendered frame's data, ready for encoding.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// OffscreenRenderer is a framebuffer of fixed size used when recording.
type OffscreenRenderer struct {
	fbo               uint32
	textureID         uint32
	depthRenderbuffer uint32
	width             int
	height            int
}

// number of frames that may be queued for the encoder
const numBuffers = 3

func NewOffscreenRenderer(width, height int) (*OffscreenRenderer, error) {
	or := &OffscreenRenderer{width: width, height: height}

	gl.GenFramebuffers(1, &or.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)

	gl.GenTextures(1, &or.textureID)
	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, or.textureID, 0)

	gl.GenRenderbuffers(1, &or.depthRenderbuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, or.depthRenderbuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, or.depthRenderbuffer)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		or.Destroy()
		return nil, fmt.Errorf("offscreen framebuffer incomplete: 0x%x", status)
	}
	return or, nil
}

func (or *OffscreenRenderer) Destroy() {
	gl.DeleteFramebuffers(1, &or.fbo)
	gl.DeleteTextures(1, &or.textureID)
	gl.DeleteRenderbuffers(1, &or.depthRenderbuffer)
}

// EncoderArgs builds the ffmpeg arguments for the raw RGBA frames produced by
// RunOffscreen. GL rows are bottom-up, so the video is flipped on the way out.
func EncoderArgs(opts *options.RhinoOptions) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"format":    "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", *opts.Width, *opts.Height),
		"framerate": *opts.FPS,
	}

	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
	}
	switch strings.ToLower(filepath.Ext(*opts.OutputFile)) {
	case ".gif":
		delete(outputArgs, "pix_fmt")
	case ".webm":
		outputArgs["c:v"] = "libvpx-vp9"
	default:
		switch runtime.GOOS {
		case "darwin":
			outputArgs["c:v"] = "h264_videotoolbox"
			outputArgs["b:v"] = "8M"
		default:
			outputArgs["c:v"] = "libx264"
			outputArgs["preset"] = "fast"
		}
	}
	return
}

// frameEpsilon absorbs rounding in duration*fps so that an exact multiple of
// the frame time does not count an extra frame.
const frameEpsilon = 1e-9

// FrameCount is the number of frames needed to cover the recording duration.
func FrameCount(duration float64, fps int) int64 {
	if duration <= 0 || fps <= 0 {
		return 0
	}
	return int64(math.Ceil(duration*float64(fps) - frameEpsilon))
}

// runEncoder is the consumer. It feeds frames from frameChan into ffmpeg.
func (r *Renderer) runEncoder(frameChan <-chan *Frame, doneChan chan<- error) {
	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := EncoderArgs(r.options)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(*r.options.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()

	if r.options.FFMPEGPath != nil && *r.options.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(*r.options.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// unblock the writer if ffmpeg exits early
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	var writeErr error
	for frame := range frameChan {
		if writeErr != nil {
			continue // drain so the producer never blocks
		}
		if _, err := pipeWriter.Write(frame.Pixels); err != nil {
			writeErr = fmt.Errorf("failed to write frame %d to ffmpeg: %w", frame.PTS, err)
			log.Printf("Error: %v", writeErr)
		}
	}
	pipeWriter.Close()

	err := <-errc
	if err == nil {
		err = writeErr
	}
	doneChan <- err
}

// RunOffscreen is the producer. It renders the scene at fixed time steps into
// an offscreen framebuffer and streams every frame to ffmpeg.
func (r *Renderer) RunOffscreen(scene Scene) error {
	if err := scene.Init(r); err != nil {
		return fmt.Errorf("failed to initialize scene: %w", err)
	}
	defer scene.Destroy()

	or, err := NewOffscreenRenderer(r.width, r.height)
	if err != nil {
		return fmt.Errorf("failed to create offscreen renderer: %w", err)
	}
	defer or.Destroy()

	fps := *r.options.FPS
	total := FrameCount(*r.options.Duration, fps)
	dt := float32(1.0 / float64(fps))
	log.Printf("Recording %d frames at %d fps to %s", total, fps, *r.options.OutputFile)

	frameChan := make(chan *Frame, numBuffers)
	encoderDoneChan := make(chan error, 1)
	go r.runEncoder(frameChan, encoderDoneChan)

	for pts := int64(0); pts < total; pts++ {
		if r.context.ShouldClose() {
			log.Printf("Recording interrupted at frame %d", pts)
			break
		}
		r.State.UpdateInput(dt)

		gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
		r.RenderFrame(scene, float64(pts)/float64(fps))
		gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
		pixels := readPixels(or.width, or.height)
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

		frameChan <- &Frame{Pixels: pixels, PTS: pts}

		if (pts+1)%int64(fps) == 0 {
			log.Printf("Rendered %d/%d frames", pts+1, total)
		}
		r.context.EndFrame()
	}
	close(frameChan)

	if err := <-encoderDoneChan; err != nil {
		return fmt.Errorf("encoding failed: %w", err)
	}
	return nil
}
