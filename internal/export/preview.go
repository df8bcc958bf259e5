package export

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/setanarut/apng"
	xdraw "golang.org/x/image/draw"

	"github.com/aretw0/demoreel/pkg/domain"
)

const (
	// PreviewWidth is the pixel width of preview frames; height keeps the aspect ratio.
	PreviewWidth = 480
	// PreviewStride keeps one frame in five, six per second of 30 fps footage.
	PreviewStride = 5

	previewDelay = 17
)

// Preview collects downscaled frames and writes Dir/<topic>-preview.png once a topic finishes.
type Preview struct {
	Dir    string
	Logger *slog.Logger

	mu     sync.Mutex
	err    error
	frames map[domain.TopicID][]image.Image
	paths  map[domain.TopicID]string
}

// NewPreview creates a Preview writing into dir, which is created on demand.
func NewPreview(dir string, logger *slog.Logger) *Preview {
	if logger == nil {
		logger = slog.Default()
	}
	return &Preview{
		Dir:    dir,
		Logger: logger,
		frames: map[domain.TopicID][]image.Image{},
		paths:  map[domain.TopicID]string{},
	}
}

// Hooks samples frames and flushes the animation at the end of each topic.
func (p *Preview) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnFrame: func(_ context.Context, e *domain.FrameEvent) {
			if e.Index%PreviewStride != 0 {
				return
			}
			small := Downscale(e.Image, PreviewWidth)
			p.mu.Lock()
			p.frames[e.Topic] = append(p.frames[e.Topic], small)
			p.mu.Unlock()
		},
		OnTopicDone: func(_ context.Context, e *domain.TopicEvent) {
			p.mu.Lock()
			frames := p.frames[e.Topic]
			delete(p.frames, e.Topic)
			p.mu.Unlock()

			if len(frames) == 0 {
				return
			}
			path := filepath.Join(p.Dir, string(e.Topic)+"-preview.png")
			if err := p.save(path, frames); err != nil {
				p.fail(err)
				return
			}
			p.mu.Lock()
			p.paths[e.Topic] = path
			p.mu.Unlock()
			p.Logger.Info("preview written", "topic", e.Topic, "path", path, "frames", len(frames))
		},
	}
}

// Path returns where the preview for topic was written, or "" if none was.
func (p *Preview) Path(topic domain.TopicID) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paths[topic]
}

// Err returns the first failure, if any.
func (p *Preview) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *Preview) fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err == nil {
		p.err = fmt.Errorf("export preview: %w", err)
	}
}

func (p *Preview) save(path string, frames []image.Image) (err error) {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return err
	}

	delays := make([]uint16, len(frames))
	for i := range delays {
		delays[i] = previewDelay
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := apng.EncodeAll(f, &apng.APNG{Images: frames, Delays: delays}); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// Downscale copies img into a new image at most width pixels wide, preserving aspect ratio.
func Downscale(img image.Image, width int) image.Image {
	b := img.Bounds()
	if b.Empty() {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	if b.Dx() < width {
		width = b.Dx()
	}
	height := b.Dy() * width / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
