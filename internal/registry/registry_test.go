package registry

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/matrix-arcade/internal/config"
	"github.com/vovakirdan/matrix-arcade/internal/core"
)

type idleGame struct{ rows, cols int }

func (g *idleGame) Update(time.Duration, core.Input, core.PixelDisplay, core.RandomSource) {}
func (g *idleGame) State() core.GameState                                                  { return core.StateStart }

func init() {
	Register("zz-idle", "Idle", func(rows, cols int, _ config.Config) core.Game {
		return &idleGame{rows: rows, cols: cols}
	})
}

func TestCreate(t *testing.T) {
	g, err := Create("zz-idle", 4, 7, config.Default())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	idle, ok := g.(*idleGame)
	if !ok {
		t.Fatalf("Create returned %T", g)
	}
	if idle.rows != 4 || idle.cols != 7 {
		t.Errorf("size = %dx%d, expected 4x7", idle.rows, idle.cols)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope", 1, 1, config.Default())
	if err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("Create(nope) error = %v, expected unknown game", err)
	}
	if _, err := CreateAll([]string{"zz-idle", "nope"}, 1, 1, config.Default()); err == nil {
		t.Error("CreateAll should fail on an unknown id")
	}
}

func TestListAndExists(t *testing.T) {
	if !Exists("zz-idle") {
		t.Error("Exists(zz-idle) = false")
	}
	if Exists("nope") {
		t.Error("Exists(nope) = true")
	}
	var found bool
	list := List()
	for i, info := range list {
		if i > 0 && list[i-1].ID > info.ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, info.ID)
		}
		if info.ID == "zz-idle" && info.Title == "Idle" {
			found = true
		}
	}
	if !found {
		t.Error("List missing zz-idle")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("zz-idle", "Again", func(int, int, config.Config) core.Game { return nil })
}
