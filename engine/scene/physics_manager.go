package scene

import "github.com/Carmen-Shannon/oxy-viewport/engine/object"

type physicsManager struct {
	physicals []object.Physical
}

// PhysicsManager integrates its members in insertion order.
// Collision detection and resolution are not implemented.
type PhysicsManager interface {
	// Add appends p.
	//
	// Parameters:
	//   - p: the physical object to add
	Add(p object.Physical)

	// Len returns the number of members.
	Len() int

	// Update calls Update(dt) on every member in order.
	//
	// Parameters:
	//   - dt: step length in seconds
	Update(dt float32)
}

var _ PhysicsManager = &physicsManager{}

// NewPhysicsManager creates an empty PhysicsManager.
func NewPhysicsManager() PhysicsManager {
	return &physicsManager{}
}

func (m *physicsManager) Add(p object.Physical) {
	m.physicals = append(m.physicals, p)
}

func (m *physicsManager) Len() int {
	return len(m.physicals)
}

func (m *physicsManager) Update(dt float32) {
	for _, p := range m.physicals {
		p.Update(dt)
	}
}
