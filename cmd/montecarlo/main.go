// Command montecarlo generates Sobol points and runs the quasi-Monte Carlo
// checks of the montecarlo package.
package main

import "log"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	Execute()
}
