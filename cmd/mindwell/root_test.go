package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	require.Equal(t, "mindwell", cmd.Use)
	require.NotEmpty(t, cmd.Short)

	flag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	require.Equal(t, "", flag.DefValue)

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	require.Contains(t, names, "serve")
	require.Contains(t, names, "migrate")
}

func TestSetupLogger(t *testing.T) {
	for _, env := range []string{envLocal, envDev, envProd, "unknown"} {
		require.NotNil(t, setupLogger(env), env)
	}
}

func TestMigrate_RejectsExtraArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"migrate", "extra"})

	require.Error(t, cmd.Execute())
}
