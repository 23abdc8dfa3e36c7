package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/evry/cmd/evry/commands"
	"go.trai.ch/evry/internal/app"
	"go.trai.ch/evry/internal/build"
)

type mockApp struct {
	runFunc      func(ctx context.Context, tag, durationText string, opts app.RunOptions) error
	durationFunc func(durationText string, opts app.RunOptions) error
	locationFunc func(tag string) error
	rollbackFunc func(tag string) error
	statusFunc   func(ctx context.Context) error
}

func (m *mockApp) Run(ctx context.Context, tag, durationText string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, tag, durationText, opts)
	}
	return nil
}

func (m *mockApp) Duration(durationText string, opts app.RunOptions) error {
	if m.durationFunc != nil {
		return m.durationFunc(durationText, opts)
	}
	return nil
}

func (m *mockApp) Location(tag string) error {
	if m.locationFunc != nil {
		return m.locationFunc(tag)
	}
	return nil
}

func (m *mockApp) Rollback(tag string) error {
	if m.rollbackFunc != nil {
		return m.rollbackFunc(tag)
	}
	return nil
}

func (m *mockApp) Status(ctx context.Context) error {
	if m.statusFunc != nil {
		return m.statusFunc(ctx)
	}
	return nil
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags and joins duration terms", func(t *testing.T) {
		var capturedTag, capturedDuration string
		var capturedOpts app.RunOptions
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, tag, durationText string, opts app.RunOptions) error {
				capturedTag = tag
				capturedDuration = durationText
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "2", "weeks,", "5hrs", "--tag", "backup", "--lock", "--debug"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "backup", capturedTag)
		assert.Equal(t, "2 weeks, 5hrs", capturedDuration)
		assert.True(t, capturedOpts.Lock)
		assert.True(t, capturedOpts.Debug)
		assert.False(t, capturedOpts.JSON)
	})

	t.Run("requires the tag flag", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _, _ string, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"run", "2", "weeks"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tag")
	})

	t.Run("requires duration terms", func(t *testing.T) {
		mock := &mockApp{}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"run", "--tag", "backup"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _, _ string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "2", "weeks", "--tag", "backup"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Duration(t *testing.T) {
	var capturedDuration string
	var capturedOpts app.RunOptions

	mock := &mockApp{
		durationFunc: func(durationText string, opts app.RunOptions) error {
			capturedDuration = durationText
			capturedOpts = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"duration", "1", "hour", "30", "minutes", "--json"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1 hour 30 minutes", capturedDuration)
	assert.True(t, capturedOpts.JSON)
}

func TestCommands_Location(t *testing.T) {
	var capturedTag string

	mock := &mockApp{
		locationFunc: func(tag string) error {
			capturedTag = tag
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"location", "--tag", "backup"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "backup", capturedTag)
}

func TestCommands_Rollback(t *testing.T) {
	var capturedTag string

	mock := &mockApp{
		rollbackFunc: func(tag string) error {
			capturedTag = tag
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"rollback", "--tag", "backup"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "backup", capturedTag)
}

func TestCommands_Status(t *testing.T) {
	called := false

	mock := &mockApp{
		statusFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"status"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
