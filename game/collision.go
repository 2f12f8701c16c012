package game

import "math"

type Vec3 struct {
	X, Y, Z float64
}

// ResolveHit finds the player the shot ray hits first, if any. Every
// candidate except the shooter is modeled as a sphere of radius HitRadius
// centered HitSphereLift above its position; the nearest intersection
// strictly in front of the origin wins. When two candidates intersect at
// the same distance the lowest session id wins, so the result does not
// depend on map iteration order. Pure: never mutates players.
func ResolveHit(shooterID string, origin, dir Vec3, players map[string]*Player) (string, bool) {
	bestID := ""
	bestT := math.Inf(1)
	for id, p := range players {
		if id == shooterID {
			continue
		}
		center := Vec3{p.X, p.Y + HitSphereLift, p.Z}
		t, ok := raySphere(origin, dir, center, HitRadius)
		if !ok {
			continue
		}
		if t < bestT || (t == bestT && id < bestID) {
			bestT = t
			bestID = id
		}
	}
	return bestID, bestID != ""
}

// raySphere solves |origin + t*dir - center|^2 = radius^2 and returns the
// smaller root. Degenerate directions (a == 0) and intersections at or
// behind the origin are misses.
func raySphere(origin, dir, center Vec3, radius float64) (float64, bool) {
	oc := Vec3{origin.X - center.X, origin.Y - center.Y, origin.Z - center.Z}
	a := dir.X*dir.X + dir.Y*dir.Y + dir.Z*dir.Z
	if a == 0 {
		return 0, false
	}
	b := 2 * (oc.X*dir.X + oc.Y*dir.Y + oc.Z*dir.Z)
	c := oc.X*oc.X + oc.Y*oc.Y + oc.Z*oc.Z - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	t := (-b - math.Sqrt(disc)) / (2 * a)
	if t <= 0 {
		return 0, false
	}
	return t, true
}
