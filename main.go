package main

import (
	"fmt"
	"os"

	"github.com/WeShipHQ/panda-monopoly-sub001/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("indexer run into an error: %s", err)
		os.Exit(1)
	}
}
