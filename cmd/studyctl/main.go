// Package main implements studyctl, a command line client for the Smart Study
// Assistant: it can answer a single study request or run the API server.
package main

import (
	"os"

	"github.com/phrazzld/study-api/cmd/studyctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
