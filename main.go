package main

import (
	"os"

	"github.com/taskloom/taskseed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
