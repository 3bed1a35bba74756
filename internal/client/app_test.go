package client

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-film-keeper/internal/catalog"
	"github.com/MKhiriev/go-film-keeper/internal/config"
	"github.com/MKhiriev/go-film-keeper/internal/service"
	"github.com/MKhiriev/go-film-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_MissingDependencies(t *testing.T) {
	_, err := NewApp(nil, &service.ClientServices{}, nil)
	assert.ErrorIs(t, err, ErrMissingDependencies)

	_, err = NewApp(&config.ClientConfig{}, nil, nil)
	assert.ErrorIs(t, err, ErrMissingDependencies)
}

func TestNewApp_DevTools(t *testing.T) {
	tests := []struct {
		name        string
		enabled     bool
		wantMonitor bool
	}{
		{name: "enabled", enabled: true, wantMonitor: true},
		{name: "disabled", enabled: false, wantMonitor: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.ClientConfig{
				Workers:  config.ClientWorkers{SyncInterval: time.Minute},
				DevTools: config.ClientDevTools{Enabled: tt.enabled, HistoryLimit: 5},
			}

			app, err := NewApp(cfg, &service.ClientServices{}, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.wantMonitor, app.monitor != nil)
		})
	}
}

func TestSummarizeCatalog(t *testing.T) {
	s := catalog.InitialState()
	s = catalog.Reduce(s, catalog.MoviesLoaded{
		List:  catalog.ListTop,
		Films: []models.Film{{MovieID: 1}, {MovieID: 2}},
	})
	s = catalog.Reduce(s, catalog.ToggleStar{MovieID: 2})

	got, ok := summarizeCatalog(s).(map[string]any)

	require.True(t, ok)
	assert.Equal(t, 2, got["films"])
	assert.Equal(t, 1, got["starred"])
	assert.Equal(t, map[catalog.List]int{catalog.ListTop: 2}, got["lists"])
}

func TestSummarizeCatalog_OtherValues(t *testing.T) {
	assert.Equal(t, 42, summarizeCatalog(42))
}
