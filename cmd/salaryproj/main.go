package main

import (
	"os"

	"github.com/incomehelper/salary-projector/cmd/salaryproj/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
