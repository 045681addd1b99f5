package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		shouldExit bool
		errCode    int
		check      func(t *testing.T, out string)
		path       string
		opRef      string
		strict     bool
	}{
		{name: "positional path", args: []string{"ops/"}, path: "ops/"},
		{name: "defs flag wins", args: []string{"-defs", "a.hcl", "-d", "b.hcl", "c.hcl"}, path: "a.hcl"},
		{name: "shorthand", args: []string{"-d", "b.hcl"}, path: "b.hcl"},
		{name: "selection and strict", args: []string{"-op", "matmul[1]", "-strict", "x"}, path: "x", opRef: "matmul[1]", strict: true},
		{name: "help", args: []string{"-h"}, shouldExit: true},
		{
			name:       "no path prints usage",
			args:       nil,
			shouldExit: true,
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "Usage:")
			},
		},
		{name: "unknown flag", args: []string{"--nope"}, errCode: 2},
		{name: "bad log format", args: []string{"-log-format", "xml", "x"}, errCode: 2},
		{name: "bad log level", args: []string{"-log-level", "loud", "x"}, errCode: 2},
		{name: "bad selection", args: []string{"-op", "[0]", "x"}, errCode: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.errCode != 0 {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.errCode, exitErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.shouldExit, shouldExit)
			if tc.check != nil {
				tc.check(t, out.String())
			}
			if tc.shouldExit {
				assert.Nil(t, cfg)
				return
			}
			require.NotNil(t, cfg)
			assert.Equal(t, tc.path, cfg.DefsPath)
			assert.Equal(t, tc.opRef, cfg.OpRef)
			assert.Equal(t, tc.strict, cfg.Strict)
			assert.Equal(t, "text", cfg.LogFormat)
			assert.Equal(t, "warn", cfg.LogLevel)
		})
	}
}
