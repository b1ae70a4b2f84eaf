package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller is the random source a battle draws from.
// Each battle gets its own Roller so concurrent battles never share a stream.
type Roller interface {
	// Float64 returns a sample in [0, 1)
	Float64() float64

	// Uniform returns a sample in [min, max]
	Uniform(min, max float64) float64
}
