package level

import (
	"errors"
	"reflect"
	"testing"
)

func TestBlank(t *testing.T) {
	m, err := Blank(5, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"#####", "#P..#", "#...#", "#####"}
	if !reflect.DeepEqual(m.Lines(), want) {
		t.Fatalf("blank = %q", m.Lines())
	}
	if _, err := Blank(2, 9); err == nil {
		t.Fatalf("2-wide level accepted")
	}
}

func TestPaint(t *testing.T) {
	m, _ := Blank(5, 4)

	m, err := m.Paint(Point{3, 2}, Coin)
	if err != nil || m.Classify(3, 2) != Coin || len(m.Coins()) != 1 {
		t.Fatalf("coin not placed: %v", err)
	}

	m, err = m.Paint(Point{2, 2}, Spawn)
	if err != nil {
		t.Fatal(err)
	}
	if m.Spawn() != (Point{2, 2}) || m.Classify(1, 1) != Floor {
		t.Fatalf("spawn did not move: %q", m.Lines())
	}

	same, err := m.Paint(m.Spawn(), Wall)
	if !errors.Is(err, ErrNoSpawn) || same != m {
		t.Fatalf("overwriting spawn: err=%v", err)
	}
	if _, err := m.Paint(Point{9, 0}, Wall); !errors.Is(err, ErrOutside) {
		t.Fatalf("outside paint err = %v", err)
	}
	if again, _ := m.Paint(Point{0, 0}, Wall); again != m {
		t.Fatalf("no-op paint made a new map")
	}
}

func TestCheck(t *testing.T) {
	m, _ := Blank(5, 4)
	if got := m.Check(); len(got) != 1 {
		t.Fatalf("blank warnings = %q, want only no-coins", got)
	}
	m, _ = m.Paint(Point{2, 2}, Coin)
	m, _ = m.Paint(Point{0, 2}, Floor)
	if got := m.Check(); len(got) != 1 || got[0] != "open left or right edge" {
		t.Fatalf("warnings = %q", got)
	}
}
