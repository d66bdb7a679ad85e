package main

import "os"

func main() {
	if err := NewModesimCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
