package main

import "github.com/pablomv/esios-mcp/cmd"

func main() {
	cmd.Execute()
}
