package main

import (
	"os"

	"github.com/MaheshSuthar119/HeartBeat-Notification/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(2)
	}
}
