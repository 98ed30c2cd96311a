package main

import (
	"os"
	"path/filepath"
	"testing"
)

// chestFixture lays out a minimal valid EnderChest installation and returns
// its minecraft root.
func chestFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "EnderChest")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := "[properties]\nname = fixture chest\n"
	if err := os.WriteFile(filepath.Join(dir, "enderchest.cfg"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

// saveFixture lays out a GSB-tracked save repo and returns its root.
func saveFixture(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "world")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := "name = \"world\"\npatterns = [\"*.dat\"]\n"
	if err := os.WriteFile(filepath.Join(root, ".gsb_manifest"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func useTempConfig(t *testing.T) {
	t.Helper()
	t.Setenv("MINECRAFT_ROOT", "")
	orig := configPath
	configPath = filepath.Join(t.TempDir(), "chestman.toml")
	t.Cleanup(func() { configPath = orig })
}

func TestLoadStoreFreshWhenNoConfig(t *testing.T) {
	useTempConfig(t)

	store, err := loadStore()
	if err != nil {
		t.Fatalf("loadStore: %v", err)
	}
	if len(store.Chests()) != 0 || len(store.Saves()) != 0 {
		t.Error("fresh store is not empty")
	}
}

func TestPersistAndReload(t *testing.T) {
	useTempConfig(t)
	chestRoot := chestFixture(t)
	saveRoot := saveFixture(t)

	store, err := loadStore()
	if err != nil {
		t.Fatalf("loadStore: %v", err)
	}
	if err := store.RegisterChest(chestRoot); err != nil {
		t.Fatalf("RegisterChest: %v", err)
	}
	if err := store.RegisterSave(saveRoot); err != nil {
		t.Fatalf("RegisterSave: %v", err)
	}
	if err := persist(store); err != nil {
		t.Fatalf("persist: %v", err)
	}

	reloaded, err := loadStore()
	if err != nil {
		t.Fatalf("loadStore after persist: %v", err)
	}

	chests := reloaded.ChestRoots()
	if len(chests) != 1 || chests[0] != chestRoot {
		t.Errorf("ChestRoots() = %v, want [%s]", chests, chestRoot)
	}
	saves := reloaded.SaveRoots()
	if len(saves) != 1 || saves[0] != saveRoot {
		t.Errorf("SaveRoots() = %v, want [%s]", saves, saveRoot)
	}
}

func TestPersistSurvivesVanishedEntry(t *testing.T) {
	useTempConfig(t)
	chestRoot := chestFixture(t)
	saveRoot := saveFixture(t)

	store, err := loadStore()
	if err != nil {
		t.Fatalf("loadStore: %v", err)
	}
	if err := store.RegisterChest(chestRoot); err != nil {
		t.Fatalf("RegisterChest: %v", err)
	}
	if err := store.RegisterSave(saveRoot); err != nil {
		t.Fatalf("RegisterSave: %v", err)
	}
	if err := persist(store); err != nil {
		t.Fatalf("persist: %v", err)
	}

	// Deleting the chest on disk must only drop that entry on reload.
	if err := os.RemoveAll(chestRoot); err != nil {
		t.Fatal(err)
	}

	reloaded, err := loadStore()
	if err != nil {
		t.Fatalf("loadStore after deletion: %v", err)
	}
	if got := len(reloaded.Chests()); got != 0 {
		t.Errorf("len(Chests()) = %d, want 0", got)
	}
	saves := reloaded.SaveRoots()
	if len(saves) != 1 || saves[0] != saveRoot {
		t.Errorf("SaveRoots() = %v, want [%s]", saves, saveRoot)
	}
}
