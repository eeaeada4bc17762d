package main

import "mosb-portal/cmd"

func main() {
	cmd.Execute()
}
