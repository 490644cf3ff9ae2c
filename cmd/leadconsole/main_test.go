package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"leadconsole/internal/config"
	"leadconsole/internal/importdir"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(importdir.DirEnv, "")
	t.Setenv(config.LogFileEnv, "")
	t.Setenv(config.OTLPEndpointEnv, "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()
	csv := "NOME,CPF,TELEFONE,VALOR LIBERADO\n" +
		"Ana,111,9999,\"R$ 1.000,50\"\n" +
		",222,8888,R$ 5\n" +
		"Bruno,333,7777,abc\n"
	if err := os.WriteFile(filepath.Join(dir, "leads.csv"), []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "check", "leads.csv",
		"--config", filepath.Join(dir, "none.yaml"),
		"--import-dir", dir,
	)
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}
	for _, want := range []string{
		filepath.Join(dir, "leads.csv"),
		"linhas:     3",
		"importados: 2",
		"ignorados:  1",
		"valores inválidos: 1",
		"R$ 1.000,50",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "header.csv"), []byte("NOME,CPF,TELEFONE,VALOR LIBERADO\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "none.yaml")

	if _, err := run(t, "check", "header.csv", "--config", cfgPath, "--import-dir", dir); err == nil {
		t.Error("a header-only file should fail")
	}
	if _, err := run(t, "check", "missing.csv", "--config", cfgPath, "--import-dir", dir); err == nil {
		t.Error("a missing file should fail")
	}
	if _, err := run(t, "check", "--config", cfgPath); err == nil {
		t.Error("check needs exactly one file")
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leadconsole", "config.yaml")

	if _, err := run(t, "config", "init", "--config", path); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.DefaultQuantity != 10 {
		t.Errorf("expected default quantity 10, got %d", cfg.DefaultQuantity)
	}

	if _, err := run(t, "config", "init", "--config", path); err == nil {
		t.Error("second init without --force should refuse to overwrite")
	}
	if _, err := run(t, "config", "init", "--config", path, "--force"); err != nil {
		t.Errorf("--force should overwrite: %v", err)
	}

	out, err := run(t, "config", "path", "--config", path)
	if err != nil || strings.TrimSpace(out) != path {
		t.Errorf("config path = %q, %v", out, err)
	}
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	t.Setenv(importdir.DirEnv, "")
	t.Setenv(config.LogFileEnv, "")
	t.Setenv(config.DebugEnv, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_quantity: 5\nimport_dir: /from/file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &rootOptions{}
	cmd := newRootCmdWithOptions(opts)
	if err := cmd.ParseFlags([]string{"--config", path, "--import-dir", "/from/flag", "--quantity", "7", "--debug"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ImportDir != "/from/flag" || cfg.DefaultQuantity != 7 || !cfg.Log.Debug {
		t.Errorf("flags not applied: %+v", cfg)
	}

	opts = &rootOptions{}
	cmd = newRootCmdWithOptions(opts)
	if err := cmd.ParseFlags([]string{"--config", path, "--quantity", "0"}); err != nil {
		t.Fatal(err)
	}
	if _, err := opts.loadConfig(cmd); err == nil {
		t.Error("quantity 0 should fail validation")
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	if err != nil || !strings.Contains(out, "leadconsole dev") {
		t.Errorf("version = %q, %v", out, err)
	}
}

func TestSampleThenCheck(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "none.yaml")
	leads := filepath.Join(dir, "leads")

	out, err := run(t, "sample", "--config", cfgPath, "--import-dir", leads)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	if !strings.Contains(out, "leads-exemplo.csv") {
		t.Errorf("unexpected output %q", out)
	}

	out, err = run(t, "check", "leads-exemplo.csv", "--config", cfgPath, "--import-dir", leads)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "importados: 5") || !strings.Contains(out, "R$ 30.951,25") {
		t.Errorf("unexpected report:\n%s", out)
	}
}
