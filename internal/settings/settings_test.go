package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	def := Default()
	if s.Port != def.Port || s.ContentPath != def.ContentPath {
		t.Errorf("missing file must fall back to defaults, got %+v", s)
	}
	if !s.WatchContent {
		t.Error("watch_content defaults to true")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := "port: \"9090\"\ncontent_path: /data/content.json\nfetch_timeout_ms: 500\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Port != "9090" {
		t.Errorf("port = %q, want 9090", s.Port)
	}
	if s.ContentPath != "/data/content.json" {
		t.Errorf("content_path = %q", s.ContentPath)
	}
	if s.FetchTimeout() != 500*time.Millisecond {
		t.Errorf("fetch timeout = %v, want 500ms", s.FetchTimeout())
	}
	// Незаполненные поля остаются дефолтными
	if s.GameServerURL != Default().GameServerURL {
		t.Errorf("game_server_url = %q, want default", s.GameServerURL)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("port: \"9090\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("AJD_PORT", "7070")
	t.Setenv("AJD_GAME_SERVER_URL", "http://game:3000")

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Port != "7070" {
		t.Errorf("port = %q, want env override 7070", s.Port)
	}
	if s.SchemaURL() != "http://game:3000/api/schema" {
		t.Errorf("schema url = %q", s.SchemaURL())
	}
}

func TestLoad_EnvCoversEverySetting(t *testing.T) {
	t.Setenv("AJD_PORT", "7070")
	t.Setenv("AJD_CONTENT_PATH", "/tmp/c.json")
	t.Setenv("AJD_SCHEMA_CACHE_PATH", "/tmp/s.json")
	t.Setenv("AJD_GAME_SERVER_URL", "http://game:3000")
	t.Setenv("AJD_FETCH_TIMEOUT_MS", "750")
	t.Setenv("AJD_WATCH_CONTENT", "false")

	s, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if s.Port != "7070" || s.ContentPath != "/tmp/c.json" || s.SchemaCachePath != "/tmp/s.json" {
		t.Errorf("path overrides not applied: %+v", s)
	}
	if s.GameServerURL != "http://game:3000" {
		t.Errorf("game_server_url = %q", s.GameServerURL)
	}
	if s.FetchTimeout() != 750*time.Millisecond {
		t.Errorf("fetch timeout = %v, want 750ms", s.FetchTimeout())
	}
	if s.WatchContent {
		t.Error("AJD_WATCH_CONTENT=false not applied")
	}
}

func TestLoad_IgnoresUnparsableEnv(t *testing.T) {
	t.Setenv("AJD_FETCH_TIMEOUT_MS", "soon")
	t.Setenv("AJD_WATCH_CONTENT", "maybe")

	s, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if s.FetchTimeoutMS != Default().FetchTimeoutMS {
		t.Errorf("fetch_timeout_ms = %d, want default", s.FetchTimeoutMS)
	}
	if !s.WatchContent {
		t.Error("unparsable AJD_WATCH_CONTENT must keep the default")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(":\tnot yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("malformed settings file must fail loudly")
	}
}

func TestFetchTimeout_GuardsNonPositive(t *testing.T) {
	s := Settings{FetchTimeoutMS: 0}
	if s.FetchTimeout() != 2*time.Second {
		t.Errorf("zero timeout = %v, want 2s default", s.FetchTimeout())
	}
	s.FetchTimeoutMS = -100
	if s.FetchTimeout() != 2*time.Second {
		t.Errorf("negative timeout = %v, want 2s default", s.FetchTimeout())
	}
}
