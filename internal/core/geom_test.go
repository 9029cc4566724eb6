package core

import (
	"math"
	"testing"
)

func TestForward(t *testing.T) {
	tests := []struct {
		name string
		yaw  float64
		x, z float64
	}{
		{"facing back wall", 0, 0, -1},
		{"facing front edge", math.Pi, 0, 1},
		{"quarter turn", math.Pi / 2, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := Forward(tc.yaw)
			if math.Abs(f.X-tc.x) > 1e-9 || math.Abs(f.Z-tc.z) > 1e-9 || f.Y != 0 {
				t.Errorf("Forward(%f) = %+v, expected (%f, 0, %f)", tc.yaw, f, tc.x, tc.z)
			}
		})
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 0.5, Y: -1, Z: 2}

	if got := a.Add(b); got != (Vec3{X: 1.5, Y: 1, Z: 5}) {
		t.Errorf("Add() = %+v", got)
	}
	if got := a.Sub(b); got != (Vec3{X: 0.5, Y: 3, Z: 1}) {
		t.Errorf("Sub() = %+v", got)
	}
	if got := a.Scale(2); got != (Vec3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Scale() = %+v", got)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestInputAxis(t *testing.T) {
	f := NewInputFrame()
	if f.Axis(ActionForward, ActionBackward) != 0 {
		t.Error("empty frame should give 0")
	}
	f.Set(ActionBackward)
	if f.Axis(ActionForward, ActionBackward) != -1 {
		t.Error("backward should give -1")
	}
	f.Set(ActionForward)
	if f.Axis(ActionForward, ActionBackward) != 1 {
		t.Error("forward should win when both are held")
	}
	f.Clear()
	if f.Has(ActionForward) {
		t.Error("Clear() should drop held actions")
	}
}
