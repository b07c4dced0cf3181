package rescache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rescache/internal/adapters/executor"
	"go.trai.ch/rescache/internal/core/domain"
	"go.trai.ch/rescache/internal/core/ports/mocks"
	"go.trai.ch/rescache/internal/engine/rescache"
	"go.uber.org/mock/gomock"
)

func TestFactory_New(t *testing.T) {
	ctrl := gomock.NewController(t)
	prober := mocks.NewMockFileProber(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	prober.EXPECT().Exists("/work/scripts/main.lua").Return(false, nil)
	mockLogger.EXPECT().Debug(gomock.Any()).MinTimes(1)

	factory := rescache.NewFactory(prober, mockLogger)
	c := factory.New("/work", executor.NewInline())

	c.AddResource(domain.Resource{ID: "script0", Content: &domain.Script{FileURI: "ws://scripts/main.lua"}})
	c.TickPendingWork()

	assert.Equal(t, []domain.ResourceUpdate{
		domain.AnalyzeResourceReport{ID: "script0", Valid: false},
	}, c.DequeuePendingUpdates())
	assert.ErrorIs(t, c.Problem("script0"), domain.ErrMissingFile)
}
