package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// TestPerftConfig_Defaults verifies PerftConfig has sensible defaults
func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Depth != 0 {
		t.Errorf("Depth = %d, want 0", cfg.Depth)
	}
	if cfg.Divide {
		t.Error("Divide should be false by default")
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
}

func TestSelfPlayConfig_Defaults(t *testing.T) {
	cfg := NewSelfPlayConfig()

	if cfg.Games != 0 {
		t.Errorf("Games = %d, want 0", cfg.Games)
	}
	if cfg.MaxPly != DefaultMaxPly {
		t.Errorf("MaxPly = %d, want %d", cfg.MaxPly, DefaultMaxPly)
	}
}

// TestConfig_Validate verifies section validation is aggregated
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Config
		wantErr bool
	}{
		{
			name:  "defaults are valid",
			build: NewConfig,
		},
		{
			name:  "perft and self-play",
			build: func() *Config { return NewConfigBuilder().WithPerft(4, true).WithSelfPlay(3, 50, 9).Build() },
		},
		{
			name:    "negative depth",
			build:   func() *Config { return NewConfigBuilder().WithPerft(-1, false).Build() },
			wantErr: true,
		},
		{
			name:    "zero workers",
			build:   func() *Config { return NewConfigBuilder().WithWorkers(0).Build() },
			wantErr: true,
		},
		{
			name:    "negative games",
			build:   func() *Config { return NewConfigBuilder().WithSelfPlay(-2, 10, 1).Build() },
			wantErr: true,
		},
		{
			name:    "zero max ply",
			build:   func() *Config { return NewConfigBuilder().WithSelfPlay(1, 0, 1).Build() },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	var buf bytes.Buffer
	cfg.SetOutput(&buf)

	if cfg.OutputFile != &buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&buf).WithVerbosity(1).Build()

	cfg.Logf(1, "summary %d\n", 1)
	cfg.Logf(2, "commentary\n")

	if got := buf.String(); got != "summary 1\n" {
		t.Errorf("log = %q, want %q", got, "summary 1\n")
	}
}

func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithMoves("e1e2", "e8e7").
		WithJSONOutput(true).
		WithOutput(&out).
		WithVerbosity(2).
		Build()

	if cfg.FEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("FEN = %q", cfg.FEN)
	}
	if len(cfg.Moves) != 2 || cfg.Moves[1] != "e8e7" {
		t.Errorf("Moves = %v", cfg.Moves)
	}
	if !cfg.JSONFormat {
		t.Error("JSONFormat should be true")
	}
	if cfg.OutputFile != &out {
		t.Error("OutputFile not set")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}
