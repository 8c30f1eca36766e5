package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-sync-resolver/internal/config"
	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/internal/mock"
	"github.com/MKhiriev/go-sync-resolver/internal/service"
	"github.com/MKhiriev/go-sync-resolver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name     string
		closeErr error
		wantErr  bool
	}{
		{name: "clean shutdown"},
		{name: "close failure is reported", closeErr: errors.New("disk gone"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := mock.NewMockLocalStorage(ctrl)
			syncSvc := mock.NewMockClientSyncService(ctrl)
			job := mock.NewMockClientSyncJob(ctrl)

			started := make(chan struct{})
			syncSvc.EXPECT().RunCycle(gomock.Any()).Return(models.CycleReport{}, nil)
			job.EXPECT().Start(gomock.Any(), time.Minute).Do(func(context.Context, time.Duration) {
				close(started)
			})
			job.EXPECT().Stop()
			storage.EXPECT().Close().Return(tt.closeErr)

			app := newApp(storage, &service.ClientServices{SyncService: syncSvc, SyncJob: job},
				config.ClientWorkers{SyncInterval: time.Minute}, logger.Nop())
			require.Same(t, syncSvc, app.Services().SyncService)

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- app.Run(ctx) }()

			<-started
			cancel()

			select {
			case err := <-done:
				if tt.wantErr {
					require.Error(t, err)
					assert.ErrorIs(t, err, tt.closeErr)
					return
				}
				assert.NoError(t, err)
			case <-time.After(time.Second):
				t.Fatal("app did not stop")
			}
		})
	}
}

func TestNewApp_UnknownPolicy(t *testing.T) {
	cfg := &config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{Driver: config.DriverMemory, DSN: ":memory:"}},
		Workers: config.ClientWorkers{SyncInterval: time.Minute},
		Sync:    config.ClientSync{ConflictPolicy: "coin_flip", BatchSize: 10},
	}

	app, err := NewApp(context.Background(), cfg, logger.Nop())

	require.ErrorIs(t, err, service.ErrUnknownConflictPolicy)
	assert.Nil(t, app)
}
