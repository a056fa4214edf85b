package main

import "github.com/turmab/helpdesk/cmd"

func main() {
	cmd.Execute()
}
