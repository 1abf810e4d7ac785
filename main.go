package main

import "github.com/jmoreaux/budgetpilot/cmd"

func main() {
	cmd.Execute()
}
