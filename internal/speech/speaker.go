package speech

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strconv"
	"sync"
)

// Speaker produces spoken output. Speak is fire-and-forget and must
// cancel any in-flight utterance first, so at most one utterance is
// ever audible.
type Speaker interface {
	Speak(text string, volume float64)
	Cancel()
}

type NoopSpeaker struct{}

func (NoopSpeaker) Speak(string, float64) {}
func (NoopSpeaker) Cancel()               {}

// ExecSpeaker shells out to the platform TTS binary: say on darwin,
// espeak on linux. Unsupported platforms and missing binaries degrade
// to a logged no-op.
type ExecSpeaker struct {
	mu      sync.Mutex
	current *exec.Cmd
	logger  *slog.Logger
}

func NewExecSpeaker(logger *slog.Logger) *ExecSpeaker {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExecSpeaker{logger: logger}
}

func (s *ExecSpeaker) Speak(text string, volume float64) {
	if text == "" {
		return
	}
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	cmd := speakCommand(text, volume)
	if cmd == nil {
		s.logger.Debug("speech unsupported on platform", "goos", runtime.GOOS)
		return
	}

	s.mu.Lock()
	s.cancelLocked()
	if err := cmd.Start(); err != nil {
		s.mu.Unlock()
		s.logger.Warn("speech start failed", "error", err)
		return
	}
	s.current = cmd
	s.mu.Unlock()

	go func() {
		_ = cmd.Wait()
		s.mu.Lock()
		if s.current == cmd {
			s.current = nil
		}
		s.mu.Unlock()
	}()
}

func (s *ExecSpeaker) Cancel() {
	s.mu.Lock()
	s.cancelLocked()
	s.mu.Unlock()
}

func (s *ExecSpeaker) cancelLocked() {
	if s.current != nil && s.current.Process != nil {
		_ = s.current.Process.Kill()
	}
	s.current = nil
}

func speakCommand(text string, volume float64) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		// say takes volume as inline [[volm]] markup, 0..1.
		return exec.Command("say", fmt.Sprintf("[[volm %0.2f]] %s", volume, text))
	case "linux":
		// espeak amplitude is 0..200 with a default of 100.
		amplitude := int(volume * 100)
		return exec.Command("espeak", "-a", strconv.Itoa(amplitude), text)
	default:
		return nil
	}
}
