// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

package session

import (
	"bytes"
	"context"
	"testing"

	"github.com/slub/ldjstructurestats/internal/report"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		vars       map[string]string
		wantErr    error
		wantFormat report.Format // only checked if wantErr is nil
	}{
		{
			name:       "defaults",
			vars:       nil,
			wantFormat: report.Full,
		},
		{
			name:       "config file",
			vars:       map[string]string{ConfigEnv: "testdata/compact.yaml"},
			wantFormat: report.Compact,
		},
		{
			name:    "missing file",
			vars:    map[string]string{ConfigEnv: "testdata/missing.yaml"},
			wantErr: ErrConfigNotFound,
		},
		{
			name:    "invalid config",
			vars:    map[string]string{ConfigEnv: "testdata/bad-version.yaml"},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "invalid log level",
			vars:    map[string]string{LogLevelEnv: "chatty"},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := Load(context.Background(), env(tt.vars), &bytes.Buffer{})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			sess := From(ctx)
			require.NotNil(t, sess)
			assert.Equal(t, tt.wantFormat, sess.Config.ReportFormat())
			assert.NotNil(t, sess.Logger)
		})
	}
}

func TestLoad_LogLevelOverride(t *testing.T) {
	var stderr bytes.Buffer
	ctx, err := Load(context.Background(), env(map[string]string{LogLevelEnv: "debug"}), &stderr)
	require.NoError(t, err)

	sess := From(ctx)
	sess.Logger.Debug("traced record", "line", 1)
	assert.Contains(t, stderr.String(), "traced record")
	assert.Equal(t, "debug", sess.Config.Log.Level)
}

func TestFrom_NoContextStored(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}

func TestRequireFromCommand(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := RequireFromCommand(cmd)
	assert.Error(t, err)

	require.NoError(t, PreRunLoad(env(nil))(cmd, nil))
	sess, err := RequireFromCommand(cmd)
	require.NoError(t, err)
	assert.Equal(t, report.Full, sess.Config.ReportFormat())
}
