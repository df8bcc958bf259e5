// Package export writes rendered frames to disk when a run asks for it.
//
// A default run keeps every frame in memory. Sequence produces the numbered PNG files
// ffmpeg's image2 demuxer expects, and Preview produces a small animated PNG per topic.
package export

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/demoreel/pkg/domain"
)

// FramePattern matches the input pattern in the conversion guide.
const FramePattern = "frame_%04d.png"

// Sequence writes every frame of every topic to Dir/<topic>/frame_NNNN.png.
// Hooks cannot fail, so the first error is kept and later frames are skipped.
type Sequence struct {
	Dir    string
	Logger *slog.Logger

	mu      sync.Mutex
	err     error
	written map[domain.TopicID]int
}

// NewSequence creates a Sequence rooted at dir. Directories are created on demand.
func NewSequence(dir string, logger *slog.Logger) *Sequence {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sequence{Dir: dir, Logger: logger, written: map[domain.TopicID]int{}}
}

// TopicDir is where frames for topic land.
func (s *Sequence) TopicDir(topic domain.TopicID) string {
	return filepath.Join(s.Dir, string(topic))
}

// Hooks writes frames as they are rendered.
func (s *Sequence) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTopicStart: func(_ context.Context, e *domain.TopicEvent) {
			s.fail(os.MkdirAll(s.TopicDir(e.Topic), 0o755))
		},
		OnFrame: func(_ context.Context, e *domain.FrameEvent) {
			if s.Err() != nil {
				return
			}
			path := filepath.Join(s.TopicDir(e.Topic), fmt.Sprintf(FramePattern, e.Index))
			if err := writePNG(path, e.Image); err != nil {
				s.fail(err)
				return
			}
			s.mu.Lock()
			s.written[e.Topic]++
			s.mu.Unlock()
		},
		OnTopicDone: func(_ context.Context, e *domain.TopicEvent) {
			s.Logger.Info("frames exported", "topic", e.Topic, "dir", s.TopicDir(e.Topic), "count", s.Written(e.Topic))
		},
	}
}

// Written reports how many frames were stored for topic.
func (s *Sequence) Written(topic domain.TopicID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.written[topic]
}

// Err returns the first write failure, if any.
func (s *Sequence) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Sequence) fail(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = fmt.Errorf("export frames: %w", err)
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
