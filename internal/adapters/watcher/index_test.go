package watcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rescache/internal/adapters/watcher"
	"go.trai.ch/rescache/internal/core/domain"
)

func TestIndex_Affected(t *testing.T) {
	x := watcher.NewIndex("/work")
	x.Update(domain.Resource{ID: "material0", Content: &domain.Material{
		Textures: []string{"ws://textures/test_bitmap0.png"},
	}})
	x.Update(domain.Resource{ID: "material1", Content: &domain.Material{
		Textures: []string{"ws://textures/test_bitmap0.png", "ws://textures/test_bitmap1.png"},
	}})
	x.Update(domain.Resource{ID: "script0", Content: &domain.Script{FileURI: "/abs/main.lua"}})
	x.Update(domain.Resource{ID: "entity0", Content: &domain.Entity{}})

	assert.Equal(t, 3, x.Len())
	assert.Equal(t, []string{"material0", "material1"}, x.Affected([]string{"/work/textures/test_bitmap0.png"}))
	assert.Equal(t, []string{"material1"}, x.Affected([]string{"/work/textures/test_bitmap1.png"}))
	assert.Equal(t, []string{"script0"}, x.Affected([]string{"/abs/main.lua"}))
	assert.Empty(t, x.Affected([]string{"/work/unrelated.txt"}))
}

func TestIndex_DirectoryMatchesFilesBelow(t *testing.T) {
	x := watcher.NewIndex("/work")
	x.Update(domain.Resource{ID: "material0", Content: &domain.Material{
		Textures: []string{"ws://textures/test_bitmap0.png"},
	}})
	x.Update(domain.Resource{ID: "script0", Content: &domain.Script{FileURI: "ws://scripts/main.lua"}})

	assert.Equal(t, []string{"material0"}, x.Affected([]string{"/work/textures"}))
	assert.Equal(t, []string{"material0", "script0"}, x.Affected([]string{"/work/"}))
	assert.Empty(t, x.Affected([]string{"/work/tex"}))
}

func TestIndex_UpdateReplacesAndRemoveDrops(t *testing.T) {
	x := watcher.NewIndex("/work")
	x.Update(domain.Resource{ID: "material0", Content: &domain.Material{
		Textures: []string{"ws://textures/test_bitmap0.png"},
	}})
	x.Update(domain.Resource{ID: "material0", Content: &domain.Material{
		Textures: []string{"ws://textures/test_bitmap1.png"},
	}})

	assert.Empty(t, x.Affected([]string{"/work/textures/test_bitmap0.png"}))
	assert.Equal(t, []string{"material0"}, x.Affected([]string{"/work/textures/test_bitmap1.png"}))

	x.Remove("material0")
	assert.Zero(t, x.Len())
	assert.Empty(t, x.Affected([]string{"/work/textures/test_bitmap1.png"}))

	x.Remove("unknown")
}

func TestIndex_InformationalFilesAreIgnored(t *testing.T) {
	x := watcher.NewIndex("/work")
	x.Update(domain.Resource{ID: "shape0", Content: &domain.Shape{PreviewMaterialID: "material0"}})
	assert.Zero(t, x.Len())
}
