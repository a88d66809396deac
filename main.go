package main

import (
	"github.com/harshx-2005/linkup-sub001/cmd"
)

func main() {
	cmd.Execute()
}
