package domain

import (
	"github.com/cespare/xxhash/v2"
)

// Snapshot is an immutable copy of a resource taken when work for it is enqueued.
type Snapshot struct {
	ID         string
	Type       ResourceType
	Name       string
	References []Reference
	Resource   Resource
	// Digest is a hash over the type and references. Two snapshots with the
	// same digest produce the same dependency graph edges.
	Digest uint64
}

// NewSnapshot deep-copies res and extracts its references.
func NewSnapshot(res Resource) *Snapshot {
	owned := res.Clone()
	refs := ExtractReferences(owned)
	return &Snapshot{
		ID:         owned.ID,
		Type:       owned.Type(),
		Name:       owned.Name,
		References: refs,
		Resource:   owned,
		Digest:     digestReferences(owned.Type(), refs),
	}
}

// Uses returns the IDs of every referenced resource, required or not.
func (s *Snapshot) Uses() []string {
	return s.collect(RefResource, false)
}

// RequiredResources returns the IDs of the required resource references.
func (s *Snapshot) RequiredResources() []string {
	return s.collect(RefResource, true)
}

// RequiredFiles returns the URIs of the required file references.
func (s *Snapshot) RequiredFiles() []string {
	return s.collect(RefFile, true)
}

func (s *Snapshot) collect(kind RefKind, requiredOnly bool) []string {
	var out []string
	for _, ref := range s.References {
		if ref.Kind != kind || (requiredOnly && !ref.Required) {
			continue
		}
		out = append(out, ref.Target)
	}
	return out
}

func digestReferences(t ResourceType, refs []Reference) uint64 {
	h := xxhash.New()
	_, _ = h.Write([]byte{byte(t)})
	for _, ref := range refs {
		flag := byte(0)
		if ref.Required {
			flag = 1
		}
		_, _ = h.Write([]byte{byte(ref.Kind), flag})
		_, _ = h.WriteString(ref.Target)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
