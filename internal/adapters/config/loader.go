// Package config provides the workspace manifest loader for rescache.
package config

import (
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
	"go.trai.ch/rescache/internal/core/domain"
	"go.trai.ch/rescache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.WorkspaceLoader = (*Loader)(nil)

// Loader implements ports.WorkspaceLoader using a YAML manifest.
type Loader struct {
	Logger ports.Logger
	fs     afero.Fs
}

// NewLoader creates a new Loader reading from fs.
func NewLoader(logger ports.Logger, fs afero.Fs) *Loader {
	return &Loader{Logger: logger, fs: fs}
}

// Load finds the manifest starting at cwd and walking up, and returns the
// declared workspace.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	path, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var manifest Manifest
	if err := l.readAndUnmarshalYAML(path, &manifest); err != nil {
		return nil, err
	}

	if manifest.Workers < 0 {
		return nil, zerr.With(zerr.New("workers must not be negative"), "workers", manifest.Workers)
	}
	if manifest.Debounce < 0 {
		return nil, zerr.With(zerr.New("debounce must not be negative"), "debounce", manifest.Debounce.String())
	}

	ws := &domain.Workspace{
		Manifest: path,
		Root:     resolveRoot(path, manifest.Root),
		Workers:  manifest.Workers,
		Debounce: manifest.Debounce,
	}
	if ws.Debounce == 0 {
		ws.Debounce = domain.DefaultDebounce
	}

	seen := make(map[string]bool, len(manifest.Resources))
	for i := range manifest.Resources {
		dto := &manifest.Resources[i]
		res, err := buildResource(dto)
		if err != nil {
			return nil, zerr.With(err, "index", i)
		}
		if seen[res.ID] {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateResource, res.ID), "id", res.ID)
		}
		seen[res.ID] = true
		ws.Resources = append(ws.Resources, res)
	}

	if len(ws.Resources) == 0 {
		l.Logger.Warn(path + " declares no resources")
	}
	return ws, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := filepath.Clean(cwd)

	for {
		path := filepath.Join(currentDir, domain.ManifestFileName)
		if info, err := l.fs.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrManifestNotFound, cwd), "cwd", cwd)
}

func (l *Loader) readAndUnmarshalYAML(path string, v any) error {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}
	return nil
}

// resolveRoot resolves the declared root against the manifest directory.
func resolveRoot(manifestPath, root string) string {
	dir := filepath.Dir(manifestPath)
	if root == "" {
		return dir
	}
	if filepath.IsAbs(root) {
		return filepath.Clean(root)
	}
	return filepath.Join(dir, root)
}

// buildResource converts a manifest entry into a domain resource.
//
//nolint:cyclop // one case per resource type
func buildResource(dto *ResourceDTO) (domain.Resource, error) {
	if dto.ID == "" {
		return domain.Resource{}, zerr.Wrap(domain.ErrEmptyResourceID, "invalid resource")
	}
	typ, err := domain.ParseResourceType(dto.Type)
	if err != nil {
		return domain.Resource{}, zerr.With(err, "id", dto.ID)
	}

	var content domain.Content
	switch typ {
	case domain.TypeMaterial:
		content = &domain.Material{Shader: dto.Shader, Textures: dto.Textures}
	case domain.TypeParticleSystem:
		content = &domain.ParticleSystem{NumParticles: dto.Particles}
	case domain.TypeShape:
		content = &domain.Shape{PreviewMaterialID: dto.PreviewMaterial}
	case domain.TypeDrawable:
		content = &domain.Drawable{Primitive: dto.Primitive}
	case domain.TypeEntity:
		content = buildEntity(dto)
	case domain.TypeScene:
		content = buildScene(dto)
	case domain.TypeTilemap:
		content = buildTilemap(dto)
	case domain.TypeScript:
		content = &domain.Script{FileURI: dto.File}
	case domain.TypeDataFile:
		content = &domain.DataFile{FileURI: dto.File}
	case domain.TypeAudioGraph:
		graph := &domain.AudioGraph{}
		for _, s := range dto.Sources {
			graph.Sources = append(graph.Sources, domain.AudioSource{Name: s.Name, FileURI: s.File})
		}
		content = graph
	case domain.TypeUI:
		ui := &domain.UI{StyleURI: dto.Style}
		for _, w := range dto.Widgets {
			ui.Widgets = append(ui.Widgets, domain.Widget{Name: w.Name, MaterialID: w.Material})
		}
		content = ui
	default:
		return domain.Resource{}, zerr.With(zerr.Wrap(domain.ErrUnknownResourceType, dto.Type), "id", dto.ID)
	}

	name := dto.Name
	if name == "" {
		name = dto.ID
	}
	return domain.Resource{ID: dto.ID, Name: name, Content: content}, nil
}

func buildEntity(dto *ResourceDTO) *domain.Entity {
	e := &domain.Entity{ScriptID: dto.Script}
	for i, n := range dto.Nodes {
		node := domain.EntityNode{Name: n.Name}
		if node.Name == "" {
			node.Name = "node" + strconv.Itoa(i)
		}
		if n.Drawable != "" || n.Material != "" {
			node.Drawable = &domain.DrawableItem{DrawableID: n.Drawable, MaterialID: n.Material}
		}
		e.Nodes = append(e.Nodes, node)
	}
	return e
}

func buildScene(dto *ResourceDTO) *domain.Scene {
	s := &domain.Scene{ScriptID: dto.Script, TilemapID: dto.Tilemap}
	for _, p := range dto.Placements {
		name := p.Name
		if name == "" {
			name = p.Entity
		}
		s.Placements = append(s.Placements, domain.Placement{Name: name, EntityID: p.Entity})
	}
	return s
}

func buildTilemap(dto *ResourceDTO) *domain.Tilemap {
	t := &domain.Tilemap{}
	for _, layer := range dto.Layers {
		t.Layers = append(t.Layers, domain.TilemapLayer{
			Name:             layer.Name,
			DataURI:          layer.Data,
			PaletteMaterials: layer.Palette,
		})
	}
	return t
}
