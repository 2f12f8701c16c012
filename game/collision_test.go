package game

import "testing"

func playerAt(id string, x, y, z float64) *Player {
	return &Player{ID: id, X: x, Y: y, Z: z, Health: MaxHealth}
}

func TestResolveHitDirectHit(t *testing.T) {
	players := map[string]*Player{
		"shooter": playerAt("shooter", 0, 1, 0),
		"victim":  playerAt("victim", 0, 1, 10),
	}
	// aim straight down +z at torso height (y + HitSphereLift)
	id, ok := ResolveHit("shooter", Vec3{0, 1.5, 0}, Vec3{0, 0, 1}, players)
	if !ok || id != "victim" {
		t.Fatalf("ResolveHit = (%q, %v), want victim", id, ok)
	}
}

func TestResolveHitUnnormalizedDirection(t *testing.T) {
	players := map[string]*Player{
		"victim": playerAt("victim", 0, 1, 10),
	}
	id, ok := ResolveHit("shooter", Vec3{0, 1.5, 0}, Vec3{0, 0, 7}, players)
	if !ok || id != "victim" {
		t.Fatalf("direction scale should not matter, got (%q, %v)", id, ok)
	}
}

func TestResolveHitRejectsBehindOrigin(t *testing.T) {
	players := map[string]*Player{
		"victim": playerAt("victim", 0, 1, 10),
	}
	if id, ok := ResolveHit("shooter", Vec3{0, 1.5, 0}, Vec3{0, 0, -1}, players); ok {
		t.Fatalf("hit %q behind the ray origin", id)
	}
}

func TestResolveHitIgnoresShooter(t *testing.T) {
	players := map[string]*Player{
		"shooter": playerAt("shooter", 0, 1, 10),
	}
	if id, ok := ResolveHit("shooter", Vec3{0, 1.5, 0}, Vec3{0, 0, 1}, players); ok {
		t.Fatalf("shooter hit itself: %q", id)
	}
}

func TestResolveHitZeroDirectionIsMiss(t *testing.T) {
	players := map[string]*Player{
		"victim": playerAt("victim", 0, 1, 10),
	}
	if id, ok := ResolveHit("shooter", Vec3{0, 1.5, 0}, Vec3{}, players); ok {
		t.Fatalf("degenerate direction produced hit on %q", id)
	}
}

func TestResolveHitPicksNearestAlongRay(t *testing.T) {
	players := map[string]*Player{
		"far":  playerAt("far", 0, 1, 20),
		"near": playerAt("near", 0, 1, 5),
	}
	id, ok := ResolveHit("shooter", Vec3{0, 1.5, 0}, Vec3{0, 0, 1}, players)
	if !ok || id != "near" {
		t.Fatalf("ResolveHit = (%q, %v), want near", id, ok)
	}
}

func TestResolveHitTieBreaksOnLowestID(t *testing.T) {
	// identical positions produce identical intersection parameters; the
	// winner must not depend on map iteration order
	players := map[string]*Player{
		"bbb": playerAt("bbb", 0, 1, 10),
		"aaa": playerAt("aaa", 0, 1, 10),
	}
	for i := 0; i < 20; i++ {
		id, ok := ResolveHit("shooter", Vec3{0, 1.5, 0}, Vec3{0, 0, 1}, players)
		if !ok || id != "aaa" {
			t.Fatalf("tie-break = (%q, %v), want aaa", id, ok)
		}
	}
}

func TestResolveHitGrazingMiss(t *testing.T) {
	players := map[string]*Player{
		"victim": playerAt("victim", 2, 1, 10), // 2 units off axis, radius is 0.5
	}
	if id, ok := ResolveHit("shooter", Vec3{0, 1.5, 0}, Vec3{0, 0, 1}, players); ok {
		t.Fatalf("ray missing the sphere reported hit on %q", id)
	}
}
