package main

import "github.com/IcodeAlpha/profoodie/cmd/profoodie"

func main() {
	profoodie.Execute()
}
