// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pleasure-utils/internal/mock"
	"github.com/MKhiriev/go-pleasure-utils/internal/override"
	"github.com/MKhiriev/go-pleasure-utils/internal/source"
	"github.com/MKhiriev/go-pleasure-utils/models"
)

const configPath = "/project/pleasure.config.yml"

func noEnv(string) (string, bool) { return "", false }

// newTestResolver wires a Resolver to gomock collaborators.
func newTestResolver(t *testing.T, ctrl *gomock.Controller, opts ...Option) (*Resolver, *mock.MockLoader, *mock.MockLocator) {
	t.Helper()
	loader := mock.NewMockLoader(ctrl)
	locator := mock.NewMockLocator(ctrl)

	opts = append([]Option{WithLookup(noEnv)}, opts...)
	return NewResolver(loader, locator, nil, opts...), loader, locator
}

func loadedDoc() models.Document {
	return models.Document{
		"api": models.Mapping(models.Document{
			"x":    models.Int(0),
			"port": models.Int(3000),
			"mongodb": models.Mapping(models.Document{
				"host": models.String("localhost"),
			}),
			"plugins": models.Sequence(
				models.Mapping(models.Document{"name": models.String("a")}),
				models.Mapping(models.Document{"name": models.String("b")}),
			),
		}),
		"ui": models.Mapping(models.Document{"theme": models.String("light")}),
	}
}

// ── GetConfig ────────────────────────────────────────────────────────────────

func TestGetConfig_Precedence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	r, loader, locator := newTestResolver(t, ctrl)
	locator.EXPECT().FindConfig().Return(configPath, nil)
	loader.EXPECT().Load(configPath).Return(loadedDoc(), true, nil)
	require.NoError(t, r.ExtendConfig("api", override.Static(models.Document{"x": models.Int(2)})))

	// Act
	got, err := r.GetConfig("api", WithMergeWith(models.Document{"x": models.Int(1)}))

	// Assert
	require.NoError(t, err)
	assert.True(t, got["x"].Equal(models.Int(1)), "caller override wins, got %v", got["x"])
	assert.True(t, got["port"].Equal(models.Int(3000)))
}

func TestGetConfig_MiddlewareOverLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, loader, locator := newTestResolver(t, ctrl)
	locator.EXPECT().FindConfig().Return(configPath, nil)
	loader.EXPECT().Load(configPath).Return(loadedDoc(), true, nil)
	require.NoError(t, r.ExtendConfig("api", override.Static(models.Document{
		"x": models.Int(2),
		"plugins": models.Sequence(
			models.Mapping(models.Document{"name": models.String("a"), "v": models.Int(2)}),
		),
	})))

	got, err := r.GetConfig("api")
	require.NoError(t, err)

	assert.True(t, got["x"].Equal(models.Int(2)))
	expectedPlugins := models.Sequence(
		models.Mapping(models.Document{"name": models.String("a"), "v": models.Int(2)}),
		models.Mapping(models.Document{"name": models.String("b")}),
	)
	assert.True(t, got["plugins"].Equal(expectedPlugins), "got %v", got["plugins"])
}

func TestGetConfig_WithoutMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, loader, locator := newTestResolver(t, ctrl)
	locator.EXPECT().FindConfig().Return(configPath, nil)
	loader.EXPECT().Load(configPath).Return(loadedDoc(), true, nil)
	require.NoError(t, r.ExtendConfig("api", override.Lazy(func() (models.Document, error) {
		t.Fatal("middleware must not run")
		return nil, nil
	})))

	got, err := r.GetConfig("api", WithoutMiddleware())
	require.NoError(t, err)
	assert.True(t, got["x"].Equal(models.Int(0)))
}

func TestGetConfig_RootAggregatesMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, loader, locator := newTestResolver(t, ctrl)
	locator.EXPECT().FindConfig().Return(configPath, nil)
	loader.EXPECT().Load(configPath).Return(loadedDoc(), true, nil)
	require.NoError(t, r.ExtendConfig("api", override.Static(models.Document{"port": models.Int(4000)})))

	got, err := r.GetConfig(override.RootScope)
	require.NoError(t, err)

	port, ok := got.Lookup("api.port")
	require.True(t, ok)
	assert.True(t, port.Equal(models.Int(4000)))
	theme, ok := got.Lookup("ui.theme")
	require.True(t, ok)
	assert.True(t, theme.Equal(models.String("light")))
}

func TestGetConfig_MissingSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, loader, locator := newTestResolver(t, ctrl)
	locator.EXPECT().FindConfig().Return(configPath, nil).Times(2)
	loader.EXPECT().Load(configPath).Return(nil, false, nil).Times(2)

	got, err := r.GetConfig(override.RootScope)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, r.ExtendConfig("api", override.Static(models.Document{"port": models.Int(4000)})))
	got, err = r.GetConfig("api", WithMergeWith(models.Document{"host": models.String("h")}))
	require.NoError(t, err)
	assert.True(t, models.Document{
		"port": models.Int(4000),
		"host": models.String("h"),
	}.Equal(got))
}

func TestGetConfig_MissingOrScalarScope(t *testing.T) {
	for _, scope := range []string{"nope", "api.port", "api.mongodb.host.deeper"} {
		t.Run(scope, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r, loader, locator := newTestResolver(t, ctrl)
			locator.EXPECT().FindConfig().Return(configPath, nil)
			loader.EXPECT().Load(configPath).Return(loadedDoc(), true, nil)

			got, err := r.GetConfig(scope, WithoutMiddleware())
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestGetConfig_DottedScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, loader, locator := newTestResolver(t, ctrl)
	locator.EXPECT().FindConfig().Return(configPath, nil)
	loader.EXPECT().Load(configPath).Return(loadedDoc(), true, nil)

	got, err := r.GetConfig("api.mongodb")
	require.NoError(t, err)
	assert.True(t, models.Document{"host": models.String("localhost")}.Equal(got))
}

func TestGetConfig_ForceReloadForgetsFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, loader, locator := newTestResolver(t, ctrl)
	locator.EXPECT().FindConfig().Return(configPath, nil)
	gomock.InOrder(
		loader.EXPECT().Forget(configPath),
		loader.EXPECT().Load(configPath).Return(loadedDoc(), true, nil),
	)

	_, err := r.GetConfig("api", WithForceReload())
	require.NoError(t, err)
}

func TestGetConfig_EnvironmentOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := map[string]string{"PLEASURE_API_MONGODB_HOST": "127.0.0.1"}
	r, loader, locator := newTestResolver(t, ctrl, WithLookup(func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}))
	locator.EXPECT().FindConfig().Return(configPath, nil).Times(2)
	loader.EXPECT().Load(configPath).Return(loadedDoc(), true, nil).Times(2)

	got, err := r.GetConfig(override.RootScope)
	require.NoError(t, err)
	host, _ := got.Lookup("api.mongodb.host")
	assert.True(t, host.Equal(models.String("127.0.0.1")))

	delete(env, "PLEASURE_API_MONGODB_HOST")
	got, err = r.GetConfig(override.RootScope)
	require.NoError(t, err)
	host, _ = got.Lookup("api.mongodb.host")
	assert.True(t, host.Equal(models.String("localhost")))
}

func TestGetConfig_EnvironmentPathIsRelativeToScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := map[string]string{"APP_MONGODB_HOST": "db"}
	r, loader, locator := newTestResolver(t, ctrl,
		WithEnvPrefix("APP"),
		WithLookup(func(name string) (string, bool) {
			v, ok := env[name]
			return v, ok
		}),
	)
	locator.EXPECT().FindConfig().Return(configPath, nil)
	loader.EXPECT().Load(configPath).Return(loadedDoc(), true, nil)

	got, err := r.GetConfig("api")
	require.NoError(t, err)
	host, _ := got.Lookup("mongodb.host")
	assert.True(t, host.Equal(models.String("db")))
}

func TestGetConfig_DoesNotMutateInputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loaded := loadedDoc()
	mergeWith := models.Document{"api": models.Mapping(models.Document{"x": models.Int(9)})}
	stored := models.Document{"api": models.Mapping(models.Document{"port": models.Int(1)})}

	env := map[string]string{"PLEASURE_API_X": "env"}
	r, loader, locator := newTestResolver(t, ctrl, WithLookup(func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}))
	locator.EXPECT().FindConfig().Return(configPath, nil)
	loader.EXPECT().Load(configPath).Return(loaded, true, nil)
	require.NoError(t, r.ExtendConfig("root-wide", override.Static(stored)))

	got, err := r.GetConfig(override.RootScope, WithMergeWith(mergeWith))
	require.NoError(t, err)
	x, _ := got.Lookup("api.x")
	assert.True(t, x.Equal(models.String("env")))

	assert.True(t, loadedDoc().Equal(loaded))
	assert.True(t, models.Document{"api": models.Mapping(models.Document{"x": models.Int(9)})}.Equal(mergeWith))
	assert.True(t, models.Document{"api": models.Mapping(models.Document{"port": models.Int(1)})}.Equal(stored))
}

func TestGetConfig_Errors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		arrange func(r *Resolver, loader *mock.MockLoader, locator *mock.MockLocator)
		wantErr error
	}{
		{
			name: "locator fails",
			arrange: func(_ *Resolver, _ *mock.MockLoader, locator *mock.MockLocator) {
				locator.EXPECT().FindConfig().Return("", boom)
			},
			wantErr: ErrLocateConfig,
		},
		{
			name: "loader fails",
			arrange: func(_ *Resolver, loader *mock.MockLoader, locator *mock.MockLocator) {
				locator.EXPECT().FindConfig().Return(configPath, nil)
				loader.EXPECT().Load(configPath).Return(nil, false, boom)
			},
			wantErr: ErrLoadConfig,
		},
		{
			name: "lazy override fails",
			arrange: func(r *Resolver, loader *mock.MockLoader, locator *mock.MockLocator) {
				locator.EXPECT().FindConfig().Return(configPath, nil)
				loader.EXPECT().Load(configPath).Return(loadedDoc(), true, nil)
				_ = r.ExtendConfig("api", override.Lazy(func() (models.Document, error) { return nil, boom }))
			},
			wantErr: ErrMiddleware,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r, loader, locator := newTestResolver(t, ctrl)
			tt.arrange(r, loader, locator)

			_, err := r.GetConfig("api")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, boom)
		})
	}
}

func TestNewResolver_SharedRegistry(t *testing.T) {
	reg := override.NewRegistry(nil)
	r := NewResolver(nil, nil, nil, WithRegistry(reg))
	assert.Same(t, reg, r.Registry())

	assert.NotNil(t, NewResolver(nil, nil, nil).Registry())
}

// ── With a real file loader ──────────────────────────────────────────────────

type fixedLocator string

func (l fixedLocator) FindConfig() (string, error) { return string(l), nil }

func TestGetConfig_ForceReloadWithFileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pleasure.config.yml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  port: 3000\n"), 0o600))

	r := NewResolver(source.NewFileLoader(nil), fixedLocator(path), nil, WithLookup(noEnv))

	got, err := r.GetConfig("api")
	require.NoError(t, err)
	assert.True(t, got["port"].Equal(models.Int(3000)))

	require.NoError(t, os.WriteFile(path, []byte("api:\n  port: 5000\n"), 0o600))

	stale, err := r.GetConfig("api")
	require.NoError(t, err)
	assert.True(t, stale["port"].Equal(models.Int(3000)), "cached document expected without reload")

	fresh, err := r.GetConfig("api", WithForceReload())
	require.NoError(t, err)
	assert.True(t, fresh["port"].Equal(models.Int(5000)))
}

func TestGetConfig_MissingFileWithFileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yml")
	r := NewResolver(source.NewFileLoader(nil), fixedLocator(path), nil, WithLookup(noEnv))

	got, err := r.GetConfig(override.RootScope, WithMergeWith(models.Document{"a": models.Bool(true)}))
	require.NoError(t, err)
	assert.True(t, models.Document{"a": models.Bool(true)}.Equal(got))
}

func TestGetConfig_MissingFileWithUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pleasure.config.js")
	r := NewResolver(source.NewFileLoader(nil), fixedLocator(path), nil, WithLookup(noEnv))

	got, err := r.GetConfig(override.RootScope)
	require.NoError(t, err)
	assert.Empty(t, got)
}
