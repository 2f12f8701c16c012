package game

const (
	ArenaBound = 50.0 // playable volume is the closed cube [-ArenaBound, ArenaBound] per axis
	SpawnRange = 15.0 // spawn x,z drawn uniformly from [-SpawnRange, SpawnRange]
	SpawnY     = 1.0

	MaxHealth  = 100
	ShotDamage = 20

	HitRadius     = 0.5 // player hit sphere radius
	HitSphereLift = 0.5 // sphere center sits at y + HitSphereLift (torso height)
)
