package main

import (
	"os"

	"github.com/PullupGuy/bioinfo-project/cmd"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "docs" {
		makeDocs()
		return
	}

	cmd.Execute() // initialize cobra commands
}
