// Package shutdown runs registered cleanup steps exactly once, either
// when the window close intercept asks for it or when the process
// receives an interrupt signal.
package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"bee-mural/internal/logger"
)

// Shutdownable is anything with cleanup to run at exit.
type Shutdownable interface {
	Shutdown()
}

// componentTimeout bounds how long one component may block the sequence.
const componentTimeout = 5 * time.Second

type Manager struct {
	mu         sync.Mutex
	once       sync.Once
	components []Shutdownable
	names      []string
	log        logger.Logger
	done       chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		log:  log,
		done: make(chan struct{}),
	}
}

// Register adds a component. Components shut down in reverse
// registration order.
func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, component)
	m.names = append(m.names, name)
}

// Listen triggers the shutdown sequence on SIGINT or SIGTERM.
func (m *Manager) Listen(onShutdown func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		m.log.Info("Shutdown", "signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
		if onShutdown != nil {
			onShutdown()
		}
	}()
}

// Shutdown runs every registered component once, newest first. A
// component that hangs is abandoned after componentTimeout.
func (m *Manager) Shutdown() {
	m.once.Do(func() {
		m.mu.Lock()
		components := m.components
		names := m.names
		m.mu.Unlock()

		m.log.Info("Shutdown", "sequence started", map[string]interface{}{
			"components": len(components),
		})

		for i := len(components) - 1; i >= 0; i-- {
			finished := make(chan struct{})
			go func(c Shutdownable) {
				defer close(finished)
				c.Shutdown()
			}(components[i])

			select {
			case <-finished:
			case <-time.After(componentTimeout):
				m.log.Warning("Shutdown", "component timed out", map[string]interface{}{
					"component": names[i],
				})
			}
		}

		close(m.done)
		m.log.Info("Shutdown", "sequence completed", nil)
	})
}

// Done is closed once the sequence has run.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
