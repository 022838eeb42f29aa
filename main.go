package main

import "github.com/mouse-blink/dupescan/cmd"

func main() {
	cmd.Execute()
}
