package parameter

import "time"

// Office Cat Wandering
const (
	// CatWaitMin and CatWaitMax bound the idle pause between walks
	CatWaitMin = 1 * time.Second
	CatWaitMax = 4 * time.Second

	// CatMoveMin and CatMoveMax bound a single walk; the cat stops where it is when time runs out
	CatMoveMin = 2 * time.Second
	CatMoveMax = 5 * time.Second

	// CatStepInterval is the time per cell while walking
	CatStepInterval = 500 * time.Millisecond
)

// Office Cat Resting
const (
	CatSitMin = 3 * time.Second
	CatSitMax = 8 * time.Second
	CatLieMin = 5 * time.Second
	CatLieMax = 12 * time.Second

	// CatRestChance is the chance to rest after a walk
	CatRestChance = 0.4

	// CatLieChance is the share of rests spent lying instead of sitting
	CatLieChance = 0.3
)

// Office Cat Startle
const (
	// CatScareRunTime is how long a startled cat runs
	CatScareRunTime = 1 * time.Second

	// CatScareStepInterval is the time per cell while running
	CatScareStepInterval = 150 * time.Millisecond

	// CatSeedSalt decorrelates the cat's random stream from the session's
	CatSeedSalt = 0x6361_7473
)
