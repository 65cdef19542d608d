package ast

import (
	"errors"
	"reflect"
	"testing"
)

func TestWalkRemovesNil(t *testing.T) {
	text := &Text{List: []Inline{
		&Plain{Body: "a"},
		&Code{NTick: 1, Body: "b"},
		&Plain{Body: "c"},
		&AutoLink{Target: "https://x.io"},
	}}
	var seen int
	n, err := Walk(text, func(n Node) (Node, error) {
		seen++
		if _, ok := n.(*Plain); ok {
			return nil, nil
		}
		return n, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != 5 {
		t.Errorf("want 5 visits, got %d", seen)
	}
	want := []Inline{&Code{NTick: 1, Body: "b"}, &AutoLink{Target: "https://x.io"}}
	if got := n.(*Text).List; !reflect.DeepEqual(want, got) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestWalkReplaces(t *testing.T) {
	text := &Text{List: []Inline{&Link{Label: "a", Target: "https://x.io"}}}
	Walk(text, func(n Node) (Node, error) {
		if l, ok := n.(*Link); ok {
			return &AutoLink{Target: l.Target}, nil
		}
		return n, nil
	})
	want := []Inline{&AutoLink{Target: "https://x.io"}}
	if !reflect.DeepEqual(want, text.List) {
		t.Errorf("want %v, got %v", want, text.List)
	}
}

func TestWalkStops(t *testing.T) {
	stop := errors.New("stop")
	text := &Text{List: []Inline{
		&Plain{Body: "a"},
		&Plain{Body: "b"},
		&Plain{Body: "c"},
	}}
	var seen []string
	_, err := Walk(text, func(n Node) (Node, error) {
		p, ok := n.(*Plain)
		if !ok {
			return n, nil
		}
		seen = append(seen, p.Body)
		if p.Body == "a" {
			return nil, nil
		}
		if p.Body == "b" {
			return n, stop
		}
		return n, nil
	})
	if err != stop {
		t.Fatalf("want stop error, got %v", err)
	}
	if !reflect.DeepEqual([]string{"a", "b"}, seen) {
		t.Errorf("walk did not stop at the error: %v", seen)
	}
	want := []Inline{&Plain{Body: "b"}, &Plain{Body: "c"}}
	if !reflect.DeepEqual(want, text.List) {
		t.Errorf("want %v, got %v", want, text.List)
	}
}

func TestWalkNil(t *testing.T) {
	n, err := Walk(nil, func(n Node) (Node, error) {
		t.Error("walker called for nil node")
		return n, nil
	})
	if n != nil || err != nil {
		t.Errorf("want nil, nil; got %v, %v", n, err)
	}
}
