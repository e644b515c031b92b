package main

import "github.com/pranav244872/skillswap/cmd"

func main() {
	cmd.Execute()
}
