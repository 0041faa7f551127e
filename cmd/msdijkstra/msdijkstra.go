// SPDX-License-Identifier: MIT

// Package main cmd/msdijkstra/msdijkstra.go
package main

import "github.com/katalvlaran/msdijkstra/cmd/msdijkstra/commands"

func main() {
	commands.Execute()
}
