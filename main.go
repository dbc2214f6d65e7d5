package main

import (
	"repopack/cmd"
)

func main() {
	cmd.Execute()
}
