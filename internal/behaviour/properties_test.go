package behaviour

import (
	"testing"
)

func TestPropertiesDefaults(t *testing.T) {
	var p Properties

	if p.Float32("speed", 2) != 2 {
		t.Error("Missing float should fall back to default")
	}
	if p.Bool("fade", true) != true {
		t.Error("Missing bool should fall back to default")
	}
	if p.String("tag", "Player") != "Player" {
		t.Error("Missing string should fall back to default")
	}
}

func TestPropertiesConversions(t *testing.T) {
	p := Properties{
		"f":    1.5,
		"i":    3,
		"seed": 42,
		"s":    "lamp",
		"b":    true,
		"v":    []interface{}{1, 2.5, 3},
		"bad":  "nope",
	}

	if p.Float32("f", 0) != 1.5 {
		t.Errorf("Expected 1.5, got %f", p.Float32("f", 0))
	}
	if p.Float32("i", 0) != 3 {
		t.Errorf("Expected ints to read as floats, got %f", p.Float32("i", 0))
	}
	if p.Int64("seed", 0) != 42 {
		t.Errorf("Expected seed 42, got %d", p.Int64("seed", 0))
	}
	if p.Float32("bad", 7) != 7 {
		t.Error("Wrong type should fall back to default")
	}
	if p.Vec3("v", [3]float32{}) != [3]float32{1, 2.5, 3} {
		t.Errorf("Expected (1,2.5,3), got %v", p.Vec3("v", [3]float32{}))
	}
}
