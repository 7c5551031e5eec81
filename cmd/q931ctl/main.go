package main

import "github.com/rgoward/q931/cmd/q931ctl/cmd"

func main() {
	cmd.Execute()
}
