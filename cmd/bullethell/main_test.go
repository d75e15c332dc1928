package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bullet-hell/internal/config"
)

func TestModeArg(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{nil, "bullethell", false},
		{[]string{"bullethell_endless"}, "bullethell_endless", false},
		{[]string{"pong"}, "", true},
	}

	for _, tt := range tests {
		got, err := modeArg(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("modeArg(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("modeArg(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestApplyEnvKeepsExplicitFlags(t *testing.T) {
	var seed int64
	var db string
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int64Var(&seed, "seed", 0, "")
	cmd.Flags().StringVar(&db, "db", "", "")
	cmd.Flags().StringVar(&flagConfig, "config", "", "")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "")
	if err := cmd.ParseFlags([]string{"--seed", "5"}); err != nil {
		t.Fatal(err)
	}
	flagSeed, flagDBPath = seed, db

	envSeed := int64(99)
	applyEnv(cmd, config.Env{Seed: &envSeed, DBPath: "runs.db", LogLevel: "debug"})

	if flagSeed != 5 {
		t.Errorf("seed = %d, the explicit flag should win", flagSeed)
	}
	if flagDBPath != "runs.db" {
		t.Errorf("db = %q, want the environment value", flagDBPath)
	}
	if flagLogLevel != "debug" {
		t.Errorf("log level = %q, want the environment value", flagLogLevel)
	}
}

func TestRunTime(t *testing.T) {
	flagFPS = 60
	tests := []struct {
		frames int
		want   string
	}{
		{0, "0:00"},
		{90, "0:01"},
		{60 * 75, "1:15"},
	}

	for _, tt := range tests {
		if got := runTime(tt.frames); got != tt.want {
			t.Errorf("runTime(%d) = %q, want %q", tt.frames, got, tt.want)
		}
	}
}
