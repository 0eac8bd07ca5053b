package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/oolong/internal/config"
	"github.com/lgbarn/oolong/internal/testutil"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testConfig(out, log *bytes.Buffer) *config.Config {
	return config.NewConfigBuilder().WithOutput(out).WithLog(log).Build()
}

func TestLoadScripts_Files(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "e2e4 e7e5\n")
	bad := writeFile(t, dir, "bad.txt", "e2e4\nzz99\n")
	missing := filepath.Join(dir, "missing.txt")

	var out, log bytes.Buffer
	scripts, failed := loadScripts([]string{good, bad, missing}, nil, testConfig(&out, &log))

	testutil.AssertEqual(t, failed, 2)
	if len(scripts) != 1 {
		t.Fatalf("got %d scripts, want 1", len(scripts))
	}
	testutil.AssertEqual(t, scripts[0].Name, good)
	testutil.AssertContains(t, log.String(), "bad.txt:2")
	testutil.AssertContains(t, log.String(), "Error opening file")
}

func TestLoadScripts_Stdin(t *testing.T) {
	var out, log bytes.Buffer
	scripts, failed := loadScripts(nil, strings.NewReader("g1f3"), testConfig(&out, &log))

	testutil.AssertEqual(t, failed, 0)
	if len(scripts) != 1 {
		t.Fatalf("got %d scripts, want 1", len(scripts))
	}
	testutil.AssertEqual(t, scripts[0].Name, "stdin")
}

func TestReplayAndWrite_Text(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Verbosity = 2
	cfg.Workers = 2

	scripts, _ := loadScripts(nil, strings.NewReader("e2e4 e2e5\n"), cfg)
	st, err := replayAndWrite(scripts, cfg)
	testutil.AssertNoError(t, err)

	if want := (stats{scripts: 1, applied: 1, rejected: 1}); st != want {
		t.Errorf("stats = %+v, want %+v", st, want)
	}
	testutil.AssertContains(t, out.String(), "applied 1, rejected 1")
	testutil.AssertContains(t, log.String(), "stdin:1: e2e5 rejected")
}

func TestReplayAndWrite_JSON(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "e2e4\n")
	b := writeFile(t, dir, "b.txt", "fen 8/8\ne2e4\n")

	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Output.Format = config.JSON

	scripts, failed := loadScripts([]string{a, b}, nil, cfg)
	testutil.AssertEqual(t, failed, 0)

	st, err := replayAndWrite(scripts, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, st.failed, 1)
	testutil.AssertEqual(t, st.scripts, 1)

	var doc struct {
		Reports []map[string]interface{} `json:"reports"`
	}
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	testutil.AssertEqual(t, len(doc.Reports), 1)
	testutil.AssertContains(t, log.String(), "invalid piece placement")
}

func TestReplayAndWrite_StopOnErrorSkipsRest(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "e2e5 e2e4\n")
	b := writeFile(t, dir, "b.txt", "g1f3\n")

	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Verbosity = 2
	cfg.Replay.StopOnError = true

	scripts, _ := loadScripts([]string{a, b}, nil, cfg)
	st, err := replayAndWrite(scripts, cfg)
	testutil.AssertNoError(t, err)

	if want := (stats{scripts: 1, rejected: 1, skipped: 1}); st != want {
		t.Errorf("stats = %+v, want %+v", st, want)
	}
	testutil.AssertContains(t, log.String(), "b.txt: skipped")
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "OOLONG_FORMAT=json\nOOLONG_PROMOTION=bishop\n")
	t.Cleanup(func() {
		os.Unsetenv(config.EnvFormat)    //nolint:errcheck
		os.Unsetenv(config.EnvPromotion) //nolint:errcheck
	})

	cfg := config.NewConfig()
	testutil.AssertNoError(t, loadEnv(cfg, path))
	testutil.AssertEqual(t, cfg.Output.Format, config.JSON)
	testutil.AssertEqual(t, cfg.Replay.DefaultPromotion.String(), "Bishop")
}

func TestLoadEnv_MissingFile(t *testing.T) {
	cfg := config.NewConfig()
	testutil.AssertNoError(t, loadEnv(cfg, filepath.Join(t.TempDir(), "absent.env")))
}

func TestReportStatistics(t *testing.T) {
	var buf bytes.Buffer
	reportStatistics(&buf, stats{scripts: 2, applied: 7, rejected: 1, failed: 1, skipped: 3})
	testutil.AssertEqual(t, buf.String(), "2 script(s) replayed, 7 move(s) applied, 1 rejected, 1 script(s) failed, 3 script(s) skipped.\n")
}

func TestUsage(t *testing.T) {
	// Just verify no panic
	usage()
}
