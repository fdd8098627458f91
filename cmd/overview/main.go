// Command overview renders timeline overviews of task traces.
package main

import "github.com/tebeka/atexit"

func main() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
