package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	testlog "homecare-scheduler/internal/testutil"
)

func TestWorkerRunner_MustRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantPanic bool
		wantMsg   string
	}{
		{name: "clean exit"},
		{name: "canceled", err: context.Canceled, wantMsg: "shutdown requested, exiting"},
		{name: "consumer failure", err: errors.New("broker gone"), wantPanic: true, wantMsg: "run error"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := testlog.New()
			c := dig.New()
			require.NoError(t, c.Provide(rec.Logger))
			r := &WorkerRunner{runFn: func(*dig.Container) error { return tt.err }}

			if tt.wantPanic {
				require.Panics(t, func() { r.MustRun(c) })
			} else {
				require.NotPanics(t, func() { r.MustRun(c) })
			}
			if tt.wantMsg != "" {
				require.True(t, hasMsg(rec.Entries(), tt.wantMsg))
			} else {
				require.Empty(t, rec.Entries())
			}
		})
	}
}

func TestWorkerRun_ConsumerMissing(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	err := workerRun(context.Background(), nil, rec.Logger(), nil, nil)
	require.EqualError(t, err, "kafka consumer is nil: worker container misconfigured")
	require.Empty(t, rec.ByEvent("worker_started"))
}

func TestNewWorkerRunner_UsesContainerRun(t *testing.T) {
	t.Parallel()

	r := NewWorkerRunner()
	require.NotNil(t, r.runFn)
}
