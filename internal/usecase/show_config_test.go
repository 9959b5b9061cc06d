package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/tasksplit/internal/domain"
	"github.com/runoshun/tasksplit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	manager := &testutil.MockConfigManager{
		GlobalInfo: domain.ConfigInfo{Path: "/global/tasksplit/config.toml"},
		RootInfo: domain.ConfigInfo{
			Path:    "/repo/.tasksplit.toml",
			Content: "[paths]\nsource = \"TODO.md\"\n",
			Exists:  true,
		},
	}
	loader := testutil.NewMockConfigLoader()
	loader.Config.Paths.Source = "TODO.md"
	uc := NewShowConfig(manager, loader)

	out, err := uc.Execute(context.Background(), ShowConfigInput{})

	require.NoError(t, err)
	assert.Equal(t, "TODO.md", out.EffectiveConfig.Paths.Source)
	assert.False(t, out.GlobalConfig.Exists)
	assert.True(t, out.RootConfig.Exists)
	assert.Equal(t, "/repo/.tasksplit.toml", out.RootConfig.Path)
}

func TestShowConfig_Execute_LoadError(t *testing.T) {
	loader := testutil.NewMockConfigLoader()
	loader.LoadErr = errors.New("parse error")
	uc := NewShowConfig(&testutil.MockConfigManager{}, loader)

	_, err := uc.Execute(context.Background(), ShowConfigInput{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
