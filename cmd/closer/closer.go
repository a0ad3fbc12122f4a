package closer

import (
	"sync"

	"github.com/meverselabs/presale/common/rlog"
)

// Closer is Closer inferface
type Closer interface {
	Close()
}

// CloserFunc adapts a function to a Closer
type CloserFunc func()

// Close calls fn
func (fn CloserFunc) Close() {
	fn()
}

// Manager handles closers, they are closed in reverse order of adding
type Manager struct {
	sync.Mutex
	isClosed bool
	Names    []string
	Closers  []Closer
	wg       sync.WaitGroup
}

// NewManager returns a Manager
func NewManager() *Manager {
	cm := &Manager{
		Names:   []string{},
		Closers: []Closer{},
	}
	cm.wg.Add(1)
	return cm
}

// IsClosed returns it is closed or not
func (cm *Manager) IsClosed() bool {
	cm.Lock()
	defer cm.Unlock()

	return cm.isClosed
}

// Add adds a closer with a name
func (cm *Manager) Add(Name string, c Closer) {
	cm.Lock()
	defer cm.Unlock()

	cm.Names = append(cm.Names, Name)
	cm.Closers = append(cm.Closers, c)
}

// CloseAll closers all closers
func (cm *Manager) CloseAll() {
	cm.Lock()
	defer cm.Unlock()

	if cm.isClosed {
		return
	}
	cm.isClosed = true
	for i := len(cm.Closers) - 1; i >= 0; i-- {
		rlog.Info("close", "name", cm.Names[i])
		cm.Closers[i].Close()
	}
	cm.wg.Done()
}

// Wait waits close all
func (cm *Manager) Wait() {
	cm.wg.Wait()
}
