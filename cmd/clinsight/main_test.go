package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestCommonFlags(t *testing.T) {
	flags := commonFlags()

	findString := func(name string) *cli.StringFlag {
		for _, flag := range flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == name {
				return f
			}
		}
		return nil
	}

	t.Run("db has default value", func(t *testing.T) {
		f := findString("db")
		require.NotNil(t, f)
		assert.Equal(t, "./clinsight_db", f.Value)
		assert.Contains(t, f.Aliases, "d")
	})

	t.Run("embedding-host has default value", func(t *testing.T) {
		f := findString("embedding-host")
		require.NotNil(t, f)
		assert.Equal(t, "http://localhost:11434/v1", f.Value)
	})

	t.Run("embedding-model has default value", func(t *testing.T) {
		f := findString("embedding-model")
		require.NotNil(t, f)
		assert.Equal(t, "all-minilm", f.Value)
	})

	t.Run("generator-host defaults to empty", func(t *testing.T) {
		f := findString("generator-host")
		require.NotNil(t, f)
		assert.Empty(t, f.Value)
	})
}

func TestAIConfigFromFlags(t *testing.T) {
	t.Run("generator host falls back to embedding host", func(t *testing.T) {
		app := &cli.App{
			Name:  "test",
			Flags: commonFlags(),
			Action: func(c *cli.Context) error {
				cfg := aiConfigFromFlags(c)
				assert.Equal(t, "http://remote:8080/v1", cfg.EmbeddingHost)
				assert.Equal(t, "http://remote:8080/v1", cfg.GeneratorHost)
				return nil
			},
		}
		err := app.Run([]string{"test", "--embedding-host", "http://remote:8080/v1"})
		require.NoError(t, err)
	})

	t.Run("generator host can differ", func(t *testing.T) {
		app := &cli.App{
			Name:  "test",
			Flags: commonFlags(),
			Action: func(c *cli.Context) error {
				cfg := aiConfigFromFlags(c)
				assert.Equal(t, "http://gen:9090/v1", cfg.GeneratorHost)
				return nil
			},
		}
		err := app.Run([]string{"test", "--generator-host", "http://gen:9090/v1"})
		require.NoError(t, err)
	})
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "WaRn"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
