// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package component

import "testing"

func TestGroundEmitsFalseOnce(t *testing.T) {
	g := NewGround(nil).(*Ground)
	diff, ok := g.Evaluate()
	if !ok || diff[0].Value != false {
		t.Fatalf("got %+v ok=%v, want false", diff, ok)
	}
	if _, ok := g.Evaluate(); ok {
		t.Fatal("Ground must emit exactly once")
	}
}

func TestSourceEmitsTrueOnce(t *testing.T) {
	s := NewSource(nil).(*Source)
	diff, ok := s.Evaluate()
	if !ok || diff[0].Value != true {
		t.Fatalf("got %+v ok=%v, want true", diff, ok)
	}
	if _, ok := s.Evaluate(); ok {
		t.Fatal("Source must emit exactly once")
	}
}

func TestSourceResetReemits(t *testing.T) {
	s := NewSource(nil).(*Source)
	s.Evaluate()
	s.Reset()
	if _, ok := s.Evaluate(); !ok {
		t.Fatal("after Reset, Source should emit again")
	}
}
