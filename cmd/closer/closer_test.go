package closer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloseAllReverseOrder(t *testing.T) {
	cm := NewManager()
	order := []string{}
	cm.Add("store", CloserFunc(func() { order = append(order, "store") }))
	cm.Add("api", CloserFunc(func() { order = append(order, "api") }))

	cm.CloseAll()
	cm.CloseAll()
	cm.Wait()

	assert.True(t, cm.IsClosed())
	assert.Equal(t, []string{"api", "store"}, order)
}
