// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/adspace/internal/config"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSessionSweeper_SweepsUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionStorage(ctrl)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sweeper := NewSessionSweeper(sessions, config.Workers{SessionSweepInterval: 5 * time.Millisecond}, logger.Nop())
	sweeper.now = func() time.Time { return now }

	ctx, cancel := context.WithCancel(context.Background())
	swept := make(chan struct{}, 10)
	sessions.EXPECT().DeleteExpiredSessions(gomock.Any(), now).DoAndReturn(
		func(context.Context, time.Time) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 1, nil
		}).MinTimes(2)

	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	<-swept
	<-swept
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
}

func TestSessionSweeper_ErrorDoesNotStopIt(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionStorage(ctrl)
	sweeper := NewSessionSweeper(sessions, config.Workers{SessionSweepInterval: time.Hour}, logger.Nop())

	sessions.EXPECT().DeleteExpiredSessions(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))

	sweeper.sweep(context.Background())
	assert.NotNil(t, sweeper.logger)
}
