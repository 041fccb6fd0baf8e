package date

import "time"

// SystemClock is the process-wide time source consulted by every entry point
// that is called without an explicit reference instant. Replace it with a
// fixed function to make an entire generation session reproducible:
//
//	date.SystemClock = func() time.Time { return fixed }
//
// The binding is deliberately not synchronized: set it once before spawning
// concurrent generators and do not mutate it while they run.
var SystemClock = time.Now
