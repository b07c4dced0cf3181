package config

import "time"

// Manifest represents the structure of the rescache.yaml file.
type Manifest struct {
	Root      string        `yaml:"root"`
	Workers   int           `yaml:"workers"`
	Debounce  time.Duration `yaml:"debounce"`
	Resources []ResourceDTO `yaml:"resources"`
}

// ResourceDTO is one declared resource. Which fields apply depends on Type.
type ResourceDTO struct {
	ID   string `yaml:"id"`
	Type string `yaml:"type"`
	Name string `yaml:"name"`

	// material
	Shader   string   `yaml:"shader"`
	Textures []string `yaml:"textures"`

	// particle-system
	Particles int `yaml:"particles"`

	// shape
	PreviewMaterial string `yaml:"previewMaterial"`

	// drawable
	Primitive string `yaml:"primitive"`

	// entity
	Nodes []NodeDTO `yaml:"nodes"`

	// scene
	Placements []PlacementDTO `yaml:"placements"`
	Tilemap    string         `yaml:"tilemap"`

	// entity and scene
	Script string `yaml:"script"`

	// tilemap
	Layers []LayerDTO `yaml:"layers"`

	// script and data-file
	File string `yaml:"file"`

	// audio-graph
	Sources []SourceDTO `yaml:"sources"`

	// ui
	Style   string      `yaml:"style"`
	Widgets []WidgetDTO `yaml:"widgets"`
}

// NodeDTO is an entity node, optionally drawing a drawable with a material.
type NodeDTO struct {
	Name     string `yaml:"name"`
	Drawable string `yaml:"drawable"`
	Material string `yaml:"material"`
}

// PlacementDTO places an entity into a scene.
type PlacementDTO struct {
	Name   string `yaml:"name"`
	Entity string `yaml:"entity"`
}

// LayerDTO is a tilemap layer.
type LayerDTO struct {
	Name    string   `yaml:"name"`
	Data    string   `yaml:"data"`
	Palette []string `yaml:"palette"`
}

// SourceDTO is an audio graph source.
type SourceDTO struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// WidgetDTO is a UI widget.
type WidgetDTO struct {
	Name     string `yaml:"name"`
	Material string `yaml:"material"`
}
