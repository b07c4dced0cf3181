package domain

import (
	"cmp"
	"slices"
)

// RefKind tells whether a reference points at another resource or at a file.
type RefKind uint8

const (
	// RefResource references another resource by ID.
	RefResource RefKind = iota
	// RefFile references a file by URI.
	RefFile
)

func (k RefKind) String() string {
	if k == RefFile {
		return "file"
	}
	return "resource"
}

// Reference is one outgoing reference of a resource.
// Only required references affect validity; informational references
// still create dependency graph edges.
type Reference struct {
	Kind     RefKind
	Target   string
	Required bool
}

// ExtractReferences returns the deduplicated, sorted references of a resource.
// When the same target is referenced both ways, the required reference wins.
func ExtractReferences(res Resource) []Reference {
	var refs refSet

	switch c := res.Content.(type) {
	case *Material:
		refs.file(c.Shader, true)
		for _, tex := range c.Textures {
			refs.file(tex, true)
		}
	case *ParticleSystem, *Drawable:
	case *Shape:
		refs.resource(c.PreviewMaterialID, false)
	case *Entity:
		for _, node := range c.Nodes {
			if node.Drawable == nil {
				continue
			}
			refs.resource(node.Drawable.DrawableID, true)
			refs.resource(node.Drawable.MaterialID, true)
		}
		refs.resource(c.ScriptID, true)
	case *Scene:
		for _, p := range c.Placements {
			refs.resource(p.EntityID, true)
		}
		refs.resource(c.ScriptID, true)
		refs.resource(c.TilemapID, true)
	case *Tilemap:
		for _, layer := range c.Layers {
			refs.file(layer.DataURI, true)
			for _, mat := range layer.PaletteMaterials {
				refs.resource(mat, true)
			}
		}
	case *Script:
		refs.file(c.FileURI, true)
	case *AudioGraph:
		for _, src := range c.Sources {
			refs.file(src.FileURI, true)
		}
	case *DataFile:
		refs.file(c.FileURI, true)
	case *UI:
		refs.file(c.StyleURI, true)
		for _, w := range c.Widgets {
			refs.resource(w.MaterialID, false)
		}
	}

	return refs.sorted()
}

type refKey struct {
	kind   RefKind
	target string
}

type refSet struct {
	m map[refKey]bool
}

func (s *refSet) add(kind RefKind, target string, required bool) {
	if target == "" {
		return
	}
	if s.m == nil {
		s.m = make(map[refKey]bool)
	}
	key := refKey{kind: kind, target: target}
	s.m[key] = s.m[key] || required
}

func (s *refSet) resource(id string, required bool) { s.add(RefResource, id, required) }
func (s *refSet) file(uri string, required bool)    { s.add(RefFile, uri, required) }

func (s *refSet) sorted() []Reference {
	out := make([]Reference, 0, len(s.m))
	for k, required := range s.m {
		out = append(out, Reference{Kind: k.kind, Target: k.target, Required: required})
	}
	slices.SortFunc(out, func(a, b Reference) int {
		if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
			return c
		}
		return cmp.Compare(a.Target, b.Target)
	})
	return out
}
