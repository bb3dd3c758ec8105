package main

import (
	"bensin/cmd"
)

func main() {
	cmd.Execute()
}
