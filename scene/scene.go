package scene

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"geo/paint"
	"geo/point"
	"geo/rect"
)

// Item is one named, colored rectangle of a scene.
type Item struct {
	Name  string
	Color string
	Rect  rect.Rect
}

// Scene holds rectangles in declaration order.
type Scene struct {
	items []*Item
	index map[string]*Item
}

func New() *Scene {
	return &Scene{index: map[string]*Item{}}
}

func (s *Scene) Add(name, color string, r rect.Rect) error {
	if _, ok := s.index[name]; ok {
		return fmt.Errorf("duplicate rectangle %q", name)
	}
	item := &Item{Name: name, Color: color, Rect: r}
	s.items = append(s.items, item)
	s.index[name] = item
	return nil
}

func (s *Scene) Lookup(name string) (*Item, bool) {
	item, ok := s.index[name]
	return item, ok
}

func (s *Scene) Items() []*Item {
	return s.items
}

// Paint builds the display list: fill, outline and name label per item.
func (s *Scene) Paint() []paint.Command {
	var cmds []paint.Command
	for _, item := range s.items {
		cmds = append(cmds, paint.NewDrawRect(item.Rect, item.Color))
		cmds = append(cmds, paint.NewDrawOutline(item.Rect, "black", 1))
		cmds = append(cmds, paint.NewDrawLabel(item.Name, item.Rect.BottomLeft(), "black"))
	}
	return cmds
}

// Parse reads a scene script. One directive per line:
//
//	rect NAME X1 Y1 X2 Y2 COLOR
//	move NAME DX DY
//
// Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) (*Scene, error) {
	s := New()
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "rect":
			if len(fields) != 7 {
				return nil, fmt.Errorf("line %d: rect wants NAME X1 Y1 X2 Y2 COLOR, got %d fields", lineno, len(fields)-1)
			}
			coords, err := atoiAll(fields[2:6])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			bl := point.New(coords[0], coords[1])
			tr := point.New(coords[2], coords[3])
			if err := s.Add(fields[1], fields[6], rect.New(bl, tr)); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
		case "move":
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: move wants NAME DX DY, got %d fields", lineno, len(fields)-1)
			}
			deltas, err := atoiAll(fields[2:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			item, ok := s.Lookup(fields[1])
			if !ok {
				return nil, fmt.Errorf("line %d: move of undeclared rectangle %q", lineno, fields[1])
			}
			item.Rect.Move(deltas[0], deltas[1])
		default:
			return nil, fmt.Errorf("line %d: unknown directive %q", lineno, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func atoiAll(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", f)
		}
		out[i] = n
	}
	return out, nil
}
