package main

import "github.com/alexiusacademia/gosismo/cmd"

func main() {
	cmd.Execute()
}
