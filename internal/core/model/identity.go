package model

// IdentityMap records where every surviving original node ID ended up after
// canonicalization. Nodes removed by filtering have no entry, which is what
// cascades their edges' removal during remapping. The map is surjective onto
// the final node ID set and is kept explicit so merges are auditable.
type IdentityMap map[string]string

func NewIdentityMap() IdentityMap {
	return make(IdentityMap)
}

// Set maps an original ID to its final ID.
func (m IdentityMap) Set(originalID, finalID string) {
	m[originalID] = finalID
}

// Keep maps an ID to itself, for nodes that survive unmerged.
func (m IdentityMap) Keep(id string) {
	m[id] = id
}

// Resolve returns the final ID for an original ID. The second return is false
// when the node was removed upstream.
func (m IdentityMap) Resolve(originalID string) (string, bool) {
	finalID, ok := m[originalID]
	return finalID, ok
}
