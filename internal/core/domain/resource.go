package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// ResourceType identifies the kind of authored resource.
type ResourceType uint8

const (
	// TypeUnknown is the zero value and is never produced by a valid resource.
	TypeUnknown ResourceType = iota
	// TypeMaterial is a surface material.
	TypeMaterial
	// TypeParticleSystem is a particle engine description.
	TypeParticleSystem
	// TypeShape is a polygon shape.
	TypeShape
	// TypeDrawable is a custom drawable.
	TypeDrawable
	// TypeEntity is an entity class built from nodes.
	TypeEntity
	// TypeScene is a scene placing entities.
	TypeScene
	// TypeScript is a script file.
	TypeScript
	// TypeAudioGraph is an audio graph.
	TypeAudioGraph
	// TypeDataFile is an arbitrary data file.
	TypeDataFile
	// TypeUI is a UI window.
	TypeUI
	// TypeTilemap is a tile map.
	TypeTilemap
)

var resourceTypeNames = map[ResourceType]string{
	TypeUnknown:        "unknown",
	TypeMaterial:       "material",
	TypeParticleSystem: "particle-system",
	TypeShape:          "shape",
	TypeDrawable:       "drawable",
	TypeEntity:         "entity",
	TypeScene:          "scene",
	TypeScript:         "script",
	TypeAudioGraph:     "audio-graph",
	TypeDataFile:       "data-file",
	TypeUI:             "ui",
	TypeTilemap:        "tilemap",
}

func (t ResourceType) String() string {
	if name, ok := resourceTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseResourceType converts a manifest type name into a ResourceType.
func ParseResourceType(s string) (ResourceType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range resourceTypeNames {
		if t != TypeUnknown && n == name {
			return t, nil
		}
	}
	return TypeUnknown, zerr.With(zerr.Wrap(ErrUnknownResourceType, s), "type", s)
}

// Resource is one authored, identity-bearing asset.
type Resource struct {
	ID      string
	Name    string
	Content Content
}

// Type returns the type of the resource's content.
func (r Resource) Type() ResourceType {
	if r.Content == nil {
		return TypeUnknown
	}
	return r.Content.Type()
}

// Clone returns a deep copy of the resource.
func (r Resource) Clone() Resource {
	out := r
	if r.Content != nil {
		out.Content = r.Content.clone()
	}
	return out
}

// Content is the closed set of type-specific resource payloads.
type Content interface {
	Type() ResourceType
	clone() Content
}

// Material describes a surface material. Shader and textures are file URIs.
type Material struct {
	Shader   string
	Textures []string
}

// ParticleSystem describes a particle engine. It carries no references.
type ParticleSystem struct {
	NumParticles int
}

// Shape is a polygon shape. PreviewMaterialID is only used for display.
type Shape struct {
	PreviewMaterialID string
}

// Drawable is a custom drawable. It carries no references.
type Drawable struct {
	Primitive string
}

// DrawableItem attaches a drawable and a material to an entity node.
type DrawableItem struct {
	DrawableID string
	MaterialID string
}

// EntityNode is one node of an entity class.
type EntityNode struct {
	Name     string
	Drawable *DrawableItem
}

// Entity is an entity class.
type Entity struct {
	Nodes    []EntityNode
	ScriptID string
}

// Placement places an entity into a scene.
type Placement struct {
	Name     string
	EntityID string
}

// Scene places entities and optionally binds a script and a tilemap.
type Scene struct {
	Placements []Placement
	ScriptID   string
	TilemapID  string
}

// TilemapLayer is one layer of a tilemap backed by a data file.
type TilemapLayer struct {
	Name             string
	DataURI          string
	PaletteMaterials []string
}

// Tilemap is a layered tile map.
type Tilemap struct {
	Layers []TilemapLayer
}

// Script is a script resource backed by a source file.
type Script struct {
	FileURI string
}

// AudioSource is one file-backed source in an audio graph.
type AudioSource struct {
	Name    string
	FileURI string
}

// AudioGraph is an audio graph with file-backed sources.
type AudioGraph struct {
	Sources []AudioSource
}

// DataFile is an arbitrary data file resource.
type DataFile struct {
	FileURI string
}

// Widget is a UI widget. MaterialID is only used for display.
type Widget struct {
	Name       string
	MaterialID string
}

// UI is a UI window with a style file.
type UI struct {
	StyleURI string
	Widgets  []Widget
}

func (*Material) Type() ResourceType       { return TypeMaterial }
func (*ParticleSystem) Type() ResourceType { return TypeParticleSystem }
func (*Shape) Type() ResourceType          { return TypeShape }
func (*Drawable) Type() ResourceType       { return TypeDrawable }
func (*Entity) Type() ResourceType         { return TypeEntity }
func (*Scene) Type() ResourceType          { return TypeScene }
func (*Tilemap) Type() ResourceType        { return TypeTilemap }
func (*Script) Type() ResourceType         { return TypeScript }
func (*AudioGraph) Type() ResourceType     { return TypeAudioGraph }
func (*DataFile) Type() ResourceType       { return TypeDataFile }
func (*UI) Type() ResourceType             { return TypeUI }

func (m *Material) clone() Content {
	c := *m
	c.Textures = slices.Clone(m.Textures)
	return &c
}

func (p *ParticleSystem) clone() Content {
	c := *p
	return &c
}

func (s *Shape) clone() Content {
	c := *s
	return &c
}

func (d *Drawable) clone() Content {
	c := *d
	return &c
}

func (e *Entity) clone() Content {
	c := *e
	c.Nodes = slices.Clone(e.Nodes)
	for i, n := range c.Nodes {
		if n.Drawable != nil {
			item := *n.Drawable
			c.Nodes[i].Drawable = &item
		}
	}
	return &c
}

func (s *Scene) clone() Content {
	c := *s
	c.Placements = slices.Clone(s.Placements)
	return &c
}

func (t *Tilemap) clone() Content {
	c := *t
	c.Layers = slices.Clone(t.Layers)
	for i, l := range c.Layers {
		c.Layers[i].PaletteMaterials = slices.Clone(l.PaletteMaterials)
	}
	return &c
}

func (s *Script) clone() Content {
	c := *s
	return &c
}

func (a *AudioGraph) clone() Content {
	c := *a
	c.Sources = slices.Clone(a.Sources)
	return &c
}

func (d *DataFile) clone() Content {
	c := *d
	return &c
}

func (u *UI) clone() Content {
	c := *u
	c.Widgets = slices.Clone(u.Widgets)
	return &c
}
