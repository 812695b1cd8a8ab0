package linearmap

type Stats struct {
	Size           int
	Capacity       int
	Collisions     int
	TotalProbes    int
	MaxProbeLength int

	LoadFactor         float64
	AverageProbeLength float64
}
