package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/relock/internal/app"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"relock": func() int {
			return run(context.Background(), os.Args[1:], os.Stderr, graftProvider)
		},
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			env.Setenv("GITHUB_OUTPUT", "")
			return nil
		},
	})
}

func TestRun_ProviderError(t *testing.T) {
	stderr := new(bytes.Buffer)
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("graph failed")
	}

	code := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: graph failed\n", stderr.String())
}

func TestRun_Version(t *testing.T) {
	code := run(context.Background(), []string{"version"}, new(bytes.Buffer), graftProvider)
	assert.Equal(t, 0, code)
}
