package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"generate", "profiles", "serve"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "seedgen", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestGenerateCommand_HasSubcommands(t *testing.T) {
	cmds := generateCmd.Commands()
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"accidents", "crimes", "combined"}
	for _, name := range expected {
		assert.True(t, names[name], "generate should have subcommand %q", name)
	}
}

func TestGenerateCommand_PersistentFlags(t *testing.T) {
	for flagName, def := range map[string]string{
		"real-percent": "30",
		"format":       "csv",
		"seed":         "0",
		"out":          "",
	} {
		flag := generateCmd.PersistentFlags().Lookup(flagName)
		require.NotNil(t, flag, "generate should have --%s flag", flagName)
		assert.Equal(t, def, flag.DefValue, "--%s default", flagName)
	}
}

func TestGenerateAccidentsCommand_Flags(t *testing.T) {
	flag := generateAccidentsCmd.Flags().Lookup("count")
	require.NotNil(t, flag, "accidents should have --count flag")
	assert.Equal(t, "500", flag.DefValue)

	profileFlag := generateAccidentsCmd.Flags().Lookup("profile")
	require.NotNil(t, profileFlag)
	assert.Equal(t, "balanced", profileFlag.DefValue)
}

func TestGenerateCombinedCommand_Flags(t *testing.T) {
	for _, flagName := range []string{"accident-count", "crime-count", "accident-profile", "crime-profile"} {
		flag := generateCombinedCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "combined should have --%s flag", flagName)
	}
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestValidateGenerateFlags(t *testing.T) {
	// Flag globals carry their registered defaults here.
	assert.NoError(t, validateGenerateFlags(100))
	assert.Error(t, validateGenerateFlags(0))
	assert.Error(t, validateGenerateFlags(-3))
}
