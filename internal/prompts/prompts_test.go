package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestManager_DefaultsWithoutFile(t *testing.T) {
	m, err := NewManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := m.Get(KindHealthAnalysis, "free")
	if got.System == "" || got.Model == "" || got.MaxTokens == 0 {
		t.Fatalf("incomplete default template: %+v", got)
	}

	st := m.Status()
	if st.FromFile || st.Templates == 0 || st.Version != defaultVersion {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestManager_TierFallback(t *testing.T) {
	m, err := NewManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	free := m.Get(KindChatGeneral, "free")
	trial := m.Get(KindChatGeneral, "trial")
	if trial != free {
		t.Fatalf("unknown tier must fall back to free")
	}

	fb := m.Get("no_such_kind", "premium")
	if fb.System == "" || fb.Model == "" {
		t.Fatalf("unknown kind must yield the fallback template, got %+v", fb)
	}
}

func TestManager_FileOverridesAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompts.yaml")

	write := func(system string) {
		t.Helper()
		content := `version: "2.0"
prompts:
  health_analysis:
    premium:
      system: "` + system + `"
      user: "analyze {health_data}"
      model: "gpt-4o"
      max_tokens: 1500
      temperature: 0.3
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write prompts file: %v", err)
		}
	}
	write("first version")

	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := m.Get(KindHealthAnalysis, "premium")
	if got.System != "first version" || got.MaxTokens != 1500 {
		t.Fatalf("file override not applied: %+v", got)
	}

	// Kinds absent from the file keep their defaults.
	if def := m.Get(KindChatEmergency, "free"); def.System == "" {
		t.Fatalf("defaults lost after file load")
	}

	write("second version")
	if err := m.Reload(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got := m.Get(KindHealthAnalysis, "premium"); got.System != "second version" {
		t.Fatalf("reload did not pick up the new file: %+v", got)
	}

	st := m.Status()
	if !st.FromFile || st.Version != "2.0" {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestManager_MalformedFileKeepsPreviousSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompts.yaml")
	if err := os.WriteFile(path, []byte("version: \"3.0\"\nprompts: {}\n"), 0o600); err != nil {
		t.Fatalf("write prompts file: %v", err)
	}

	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := os.WriteFile(path, []byte("{{ not yaml"), 0o600); err != nil {
		t.Fatalf("write prompts file: %v", err)
	}
	if err := m.Reload(); err == nil {
		t.Fatalf("expected parse error")
	}
	if st := m.Status(); st.Version != "3.0" {
		t.Fatalf("previous set must survive a failed reload, got %+v", st)
	}
}

func TestTemplate_Render(t *testing.T) {
	tpl := Template{User: "Pet: {pet_profile}\nQ: {user_message}"}
	out := tpl.Render(map[string]string{
		"pet_profile":  "dog, 3y",
		"user_message": "is grape ok?",
	})
	if !strings.Contains(out, "dog, 3y") || !strings.Contains(out, "is grape ok?") {
		t.Fatalf("render failed: %q", out)
	}
	// Unknown placeholders are left alone.
	if got := tpl.Render(nil); got != tpl.User {
		t.Fatalf("no-var render must be identity, got %q", got)
	}
}
